/*
 * params.go, part of frettchen.
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

//Params holds the physical parameters of a donor-acceptor pair.
//Use NewParams to obtain a validated set.
type Params struct {
	quantumYield         float64
	kappaSquared         float64
	opticalDensity       float64
	extinction           float64
	extinctionWavelength float64
}

//NewParams returns the parameters of a FRET pair: the donor quantum yield (in [0,1]),
//the orientation factor κ² (in [0,4]), the optical density term, i.e. the refractive index
//of the medium (>0), the molar extinction coefficient of the acceptor in 1/(M*cm) (>0)
//and the wavelength in nm at which that coefficient was measured (>0).
func NewParams(quantumYield, kappaSquared, opticalDensity, extinction, extinctionWavelength float64) (*Params, error) {
	const fn = "NewParams"
	switch {
	case !finite(quantumYield) || quantumYield < 0 || quantumYield > 1:
		return nil, NewError(InvalidConfig, fn, "donor quantum yield must be in [0, 1], got %g", quantumYield)
	case !finite(kappaSquared) || kappaSquared < 0 || kappaSquared > MaxKappaSquared:
		return nil, NewError(InvalidConfig, fn, "kappa squared must be in [0, %g], got %g", MaxKappaSquared, kappaSquared)
	case !finite(opticalDensity) || opticalDensity <= 0:
		return nil, NewError(InvalidConfig, fn, "optical density must be positive, got %g", opticalDensity)
	case !finite(extinction) || extinction <= 0:
		return nil, NewError(InvalidConfig, fn, "acceptor molar extinction coefficient must be positive, got %g", extinction)
	case !finite(extinctionWavelength) || extinctionWavelength <= 0:
		return nil, NewError(InvalidConfig, fn, "extinction coefficient wavelength must be positive, got %g", extinctionWavelength)
	}
	return &Params{
		quantumYield:         quantumYield,
		kappaSquared:         kappaSquared,
		opticalDensity:       opticalDensity,
		extinction:           extinction,
		extinctionWavelength: extinctionWavelength,
	}, nil
}

func (P *Params) QuantumYield() float64 { return P.quantumYield }

func (P *Params) KappaSquared() float64 { return P.kappaSquared }

func (P *Params) OpticalDensity() float64 { return P.opticalDensity }

//Extinction returns the molar extinction coefficient of the acceptor, in 1/(M*cm).
func (P *Params) Extinction() float64 { return P.extinction }

//ExtinctionWavelength returns the wavelength, in nm, at which the extinction coefficient was measured.
func (P *Params) ExtinctionWavelength() float64 { return P.extinctionWavelength }
