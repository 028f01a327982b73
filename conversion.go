/*
 * conversion.go, part of frettchen.
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

//This provides the constants of the Förster equation and the defaults used for FRET pairs.

const (
	//ForsterPrefactor turns (n^-4 κ² Q J)^(1/6) into a radius in Å, for wavelengths in nm
	//and extinction coefficients in 1/(M*cm).
	ForsterPrefactor = 0.211
	//DefaultKappaSquared is the orientation factor for freely rotating dipoles.
	DefaultKappaSquared = 2.0 / 3.0
	//DefaultOpticalDensity is the refractive index of water.
	DefaultOpticalDensity = 1.33
	//MaxKappaSquared is the largest value the orientation factor can take.
	MaxKappaSquared = 4.0
)

//Column names in the spectral tables.
const (
	ColWavelength         = "wavelength_[nm]"
	ColEmission           = "donor_emission"
	ColAbsorption         = "acceptor_absorption"
	ColEmissionNormalized = "donor_emission_normalized"
	ColAbsorptionMolar    = "acceptor_absorption_[1/(M*cm)]"
	ColOverlap            = "overlap"
)
