/*
 * summary.go, part of frettchen.
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
	"gonum.org/v1/gonum/stat"
)

//Band describes the position of one spectrum.
type Band struct {
	Peak float64 //wavelength of the maximum, nm
	Mean float64 //intensity-weighted mean wavelength, nm
}

//Summary describes the position of the donor emission and acceptor absorption bands.
type Summary struct {
	Emission   Band
	Absorption Band
	//Separation between the absorption and emission peaks, nm.
	PeakShift float64
}

//Summarize returns the peaks and weighted mean wavelengths of both spectra in S.
//Negative intensities (baseline noise) get no weight.
func Summarize(S *Spectra) (*Summary, error) {
	em, err := band(S.wavelength, S.emission)
	if err != nil {
		return nil, errDecorate(err, "Summarize: emission")
	}
	ab, err := band(S.wavelength, S.absorption)
	if err != nil {
		return nil, errDecorate(err, "Summarize: absorption")
	}
	return &Summary{Emission: em, Absorption: ab, PeakShift: ab.Peak - em.Peak}, nil
}

func band(wavelength, intensity []float64) (Band, error) {
	w := make([]float64, len(intensity))
	for i, v := range intensity {
		w[i] = math.Max(v, 0)
	}
	if floats.Sum(w) == 0 {
		return Band{}, NewError(Degenerate, "band", "spectrum has no positive intensity")
	}
	return Band{
		Peak: wavelength[floats.MaxIdx(intensity)],
		Mean: stat.Mean(wavelength, w),
	}, nil
}
