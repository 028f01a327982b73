/*
 * handy.go, part of frettchen.
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

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/integrate"
)

//Some internal convenience functions.

var logger = zerolog.Nop()

//SetLogger sets the logger used by the package for warnings and debug
//information. By default nothing is logged.
func SetLogger(l zerolog.Logger) {
	logger = l
}

//reversed returns a reversed copy of s.
func reversed(s []float64) []float64 {
	r := make([]float64, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}

//area returns the absolute value of the trapezoidal integral of y over the
//wavelengths of S. gonum wants increasing abscissas, so descending
//tables are integrated in reverse, which only flips the sign.
func (S *Spectra) area(y []float64) float64 {
	return math.Abs(integrate.Trapezoidal(S.ascending(S.wavelength), S.ascending(y)))
}
