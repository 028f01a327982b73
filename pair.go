/*
 * pair.go, part of frettchen.
 *
 * Copyright 2020 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package fret

import (
	"fmt"
	"math"
)

//Pair is a donor-acceptor FRET pair. It goes through three states: configured
//(NewPair), spectra loaded (LoadSpectra) and fitted (Fit). A Pair is not meant to
//be used from several goroutines at once, but different pairs are independent.
type Pair struct {
	params  *Params
	spectra *Spectra
	result  *Result
}

//NewPair returns a configured pair with the parameters P.
func NewPair(P *Params) (*Pair, error) {
	if P == nil {
		return nil, NewError(InvalidConfig, "NewPair", "nil parameters")
	}
	return &Pair{params: P}, nil
}

//Params returns the parameters of the pair.
func (F *Pair) Params() *Params { return F.params }

//Spectra returns the spectra loaded in the pair, or nil.
func (F *Pair) Spectra() *Spectra { return F.spectra }

//LoadSpectra attaches the spectral table to the pair. The extinction coefficient
//wavelength must lie within the table. Any previous fit is discarded.
func (F *Pair) LoadSpectra(S *Spectra) error {
	if S == nil {
		return NewError(MalformedInput, "Pair.LoadSpectra", "nil spectra")
	}
	if _, err := S.RefIndex(F.params.extinctionWavelength); err != nil {
		return errDecorate(err, "Pair.LoadSpectra")
	}
	F.spectra = S
	F.result = nil
	return nil
}

//Fit runs the pipeline. On error, the pair is left as it was.
func (F *Pair) Fit() error {
	if F.spectra == nil {
		return NewError(InvalidConfig, "Pair.Fit", "no spectra loaded")
	}
	res, err := Run(F.spectra, F.params)
	if err != nil {
		return errDecorate(err, "Pair.Fit")
	}
	F.result = res
	return nil
}

//Fitted is true once Fit has succeeded.
func (F *Pair) Fitted() bool { return F.result != nil }

func (F *Pair) notFitted(caller string) error {
	return NewError(NotFitted, caller, "the pair has not been fitted")
}

//Result returns the full result of the fit.
func (F *Pair) Result() (*Result, error) {
	if F.result == nil {
		return nil, F.notFitted("Pair.Result")
	}
	return F.result, nil
}

//OverlapIntegral returns the overlap integral in 1/(M*cm) nm^4.
func (F *Pair) OverlapIntegral() (float64, error) {
	if F.result == nil {
		return 0, F.notFitted("Pair.OverlapIntegral")
	}
	return F.result.OverlapIntegral, nil
}

//FoersterRadius returns the Förster radius in Å.
func (F *Pair) FoersterRadius() (float64, error) {
	if F.result == nil {
		return 0, F.notFitted("Pair.FoersterRadius")
	}
	return F.result.FoersterRadius, nil
}

//Efficiency returns the transfer efficiency at the donor-acceptor distance r, in Å.
func (F *Pair) Efficiency(r float64) (float64, error) {
	if F.result == nil {
		return 0, F.notFitted("Pair.Efficiency")
	}
	if !finite(r) || r < 0 {
		return 0, NewError(InvalidConfig, "Pair.Efficiency", "distance must be non-negative, got %g", r)
	}
	return efficiency(r, F.result.FoersterRadius), nil
}

//Distance returns the donor-acceptor distance, in Å, at which the transfer
//efficiency is e. e must be in (0, 1).
func (F *Pair) Distance(e float64) (float64, error) {
	if F.result == nil {
		return 0, F.notFitted("Pair.Distance")
	}
	if !finite(e) || e <= 0 || e >= 1 {
		return 0, NewError(InvalidConfig, "Pair.Distance", "efficiency must be in (0, 1), got %g", e)
	}
	return F.result.FoersterRadius * math.Pow(1/e-1, 1.0/6.0), nil
}

func efficiency(r, r0 float64) float64 {
	if r0 == 0 {
		if r == 0 {
			return 1
		}
		return 0
	}
	return 1 / (1 + math.Pow(r/r0, 6))
}

//EfficiencyCurve returns n distances evenly spaced in [0, rmax] Å and the transfer
//efficiencies at each of them.
func (F *Pair) EfficiencyCurve(rmax float64, n int) ([]float64, []float64, error) {
	if F.result == nil {
		return nil, nil, F.notFitted("Pair.EfficiencyCurve")
	}
	if n < 2 || !finite(rmax) || rmax <= 0 {
		return nil, nil, NewError(InvalidConfig, "Pair.EfficiencyCurve", "need at least 2 points and a positive range, got %d and %g", n, rmax)
	}
	r := make([]float64, n)
	e := make([]float64, n)
	for i := range r {
		r[i] = rmax * float64(i) / float64(n-1)
		e[i] = efficiency(r[i], F.result.FoersterRadius)
	}
	return r, e, nil
}

func (F *Pair) String() string {
	var J, r0 float64
	if F.result != nil {
		J, r0 = F.result.OverlapIntegral, F.result.FoersterRadius
	}
	P := F.params
	return fmt.Sprintf("FretPair\ndonor quantum yield: %.3e\nK^2: %.3e\noptical density: %.3f\nmolar extinction coefficient acceptor [M^-1 * cm^-1]: %.3e\nextinction coefficient wavelength [nm]: %.3f\noverlap integral: %.3e\nFoerster Radius [A]: %.3f\n",
		P.quantumYield, P.kappaSquared, P.opticalDensity, P.extinction, P.extinctionWavelength, J, r0)
}
