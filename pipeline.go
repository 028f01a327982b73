/*
 * pipeline.go, part of frettchen.
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
	"math"

	"gonum.org/v1/gonum/floats"
)

//The Förster radius is obtained in five steps, each one needing the results of the
//previous. Each step returns a stage value that is the only way to reach the next step,
//so they can't be run out of order.

//EmissionStage holds the donor emission normalized to unit area.
type EmissionStage struct {
	spectra    *Spectra
	normalized []float64
}

//NormalizeEmission divides the donor emission by the absolute value of its
//trapezoidal integral over the wavelengths.
func NormalizeEmission(S *Spectra) (*EmissionStage, error) {
	area := S.area(S.emission)
	if area == 0 || !finite(area) {
		return nil, NewError(Degenerate, "NormalizeEmission", "the area under the donor emission spectrum is %g", area)
	}
	normalized := make([]float64, S.Len())
	for i, v := range S.emission {
		normalized[i] = v / area
		if !finite(normalized[i]) {
			return nil, NewError(Degenerate, "NormalizeEmission", "non-finite normalized emission in row %d (area %g)", i, area)
		}
	}
	return &EmissionStage{spectra: S, normalized: normalized}, nil
}

//Normalized returns a copy of the normalized emission.
func (E *EmissionStage) Normalized() []float64 { return append([]float64(nil), E.normalized...) }

//AbsorptionStage holds the acceptor absorption in molar extinction units.
type AbsorptionStage struct {
	emission *EmissionStage
	molar    []float64
	ref      int
}

//NormalizeAbsorption scales the acceptor absorption so its value at the reference
//wavelength lambda equals the extinction coefficient (in 1/(M*cm)). See Spectra.RefIndex
//for the choice of the reference row.
func (E *EmissionStage) NormalizeAbsorption(lambda, extinction float64) (*AbsorptionStage, error) {
	const fn = "EmissionStage.NormalizeAbsorption"
	if !finite(extinction) || extinction <= 0 {
		return nil, NewError(InvalidConfig, fn, "acceptor molar extinction coefficient must be positive, got %g", extinction)
	}
	S := E.spectra
	ref, err := S.RefIndex(lambda)
	if err != nil {
		return nil, errDecorate(err, fn)
	}
	a0 := S.absorption[ref]
	if a0 == 0 {
		return nil, NewError(Degenerate, fn, "acceptor absorption is zero at the reference wavelength %g nm", S.wavelength[ref])
	}
	molar := make([]float64, S.Len())
	for i, v := range S.absorption {
		molar[i] = (v / a0) * extinction
		if !finite(molar[i]) {
			return nil, NewError(Degenerate, fn, "non-finite molar absorption in row %d", i)
		}
	}
	return &AbsorptionStage{emission: E, molar: molar, ref: ref}, nil
}

//Molar returns a copy of the absorption in 1/(M*cm).
func (A *AbsorptionStage) Molar() []float64 { return append([]float64(nil), A.molar...) }

//RefIndex returns the row used as reference for the extinction coefficient.
func (A *AbsorptionStage) RefIndex() int { return A.ref }

//OverlapStage holds the spectral overlap function J(λ).
type OverlapStage struct {
	absorption *AbsorptionStage
	overlap    []float64
}

//Overlap computes J(λ) = ε(λ) F(λ) λ^4 for each row of the table.
func (A *AbsorptionStage) Overlap() *OverlapStage {
	S := A.emission.spectra
	overlap := make([]float64, S.Len())
	floats.MulTo(overlap, A.molar, A.emission.normalized)
	for i, w := range S.wavelength {
		overlap[i] *= math.Pow(w, 4)
	}
	return &OverlapStage{absorption: A, overlap: overlap}
}

//Values returns a copy of the overlap function.
func (O *OverlapStage) Values() []float64 { return append([]float64(nil), O.overlap...) }

//Integrate returns the overlap integral, in 1/(M*cm) nm^4. It is never negative.
func (O *OverlapStage) Integrate() float64 {
	return O.absorption.emission.spectra.area(O.overlap)
}

//FoersterRadius returns the Förster radius in Å,
//R0 = 0.211 (n^-4 κ² Q J)^(1/6).
func FoersterRadius(opticalDensity, kappaSquared, quantumYield, overlapIntegral float64) (float64, error) {
	const fn = "FoersterRadius"
	if opticalDensity == 0 || !finite(opticalDensity) {
		return 0, NewError(InvalidConfig, fn, "optical density must be finite and non-zero, got %g", opticalDensity)
	}
	radicand := math.Pow(opticalDensity, -4) * kappaSquared * quantumYield * overlapIntegral
	if !finite(radicand) || radicand < 0 {
		return 0, NewError(Degenerate, fn, "the Förster equation radicand is %g", radicand)
	}
	return ForsterPrefactor * math.Pow(radicand, 1.0/6.0), nil
}

//Result gathers everything a fit produces.
type Result struct {
	EmissionNormalized []float64
	AbsorptionMolar    []float64
	Overlap            []float64
	RefIndex           int
	OverlapIntegral    float64 //1/(M*cm) nm^4
	FoersterRadius     float64 //Å
}

//Run applies the whole pipeline to the spectra S with the parameters P.
func Run(S *Spectra, P *Params) (*Result, error) {
	const fn = "Run"
	em, err := NormalizeEmission(S)
	if err != nil {
		return nil, errDecorate(err, fn)
	}
	ab, err := em.NormalizeAbsorption(P.extinctionWavelength, P.extinction)
	if err != nil {
		return nil, errDecorate(err, fn)
	}
	ov := ab.Overlap()
	J := ov.Integrate()
	r0, err := FoersterRadius(P.opticalDensity, P.kappaSquared, P.quantumYield, J)
	if err != nil {
		return nil, errDecorate(err, fn)
	}
	return &Result{
		EmissionNormalized: em.normalized,
		AbsorptionMolar:    ab.molar,
		Overlap:            ov.overlap,
		RefIndex:           ab.ref,
		OverlapIntegral:    J,
		FoersterRadius:     r0,
	}, nil
}
