/*
 * doc.go, part of frettchen.
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

/*Package fret is the main package of frettchen, a tool to model FRET pairs. It computes the
Förster radius (R0) of a donor-acceptor pair from the donor emission and acceptor absorption
spectra and a few physical parameters.



	**frettchen Capabilities**


    Normalizes the donor emission spectrum to unit area (trapezoidal rule).

    Rescales the acceptor absorption to molar extinction units, anchored at the
	wavelength where the extinction coefficient was measured.

    Builds the spectral overlap function J(λ) = ε(λ) F(λ) λ^4 and integrates it.

    Obtains the Förster radius, R0 = 0.211 (n^-4 κ² Q J)^(1/6), in Å, for wavelengths
	in nm and extinction coefficients in 1/(M*cm).

    Transfer efficiency and distance from the fitted R0.

    Reads and writes the spectra from/to xlsx workbooks (package xlsx), plots them
	(package fretplot) and writes JSON reports (package fretjson).


The pipeline can be run step by step:

	em, err := fret.NormalizeEmission(spectra)
	ab, err := em.NormalizeAbsorption(646, 250e3)
	J := ab.Overlap().Integrate()
	r0, err := fret.FoersterRadius(1.33, 2.0/3.0, 0.15, J)

or through a Pair, which keeps the parameters, the spectra and the results together.

All errors returned by the library are *fret.Error values that can be classified with IsKind.*/
package fret
