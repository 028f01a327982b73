/*
 * spectra.go, part of frettchen.
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
	"sort"
)

//Extra is a column of the input table that takes no part in the
//calculation, but is carried over to the output.
type Extra struct {
	Name  string
	Cells []string
}

//Spectra is the wavelength-indexed table with the donor emission and the acceptor
//absorption. Once built, the number of rows and their order don't change.
//The wavelengths must be strictly monotonic, either ascending or descending.
type Spectra struct {
	wavelength []float64
	emission   []float64
	absorption []float64
	descending bool
	extra      []Extra
	columns    []string //table order of all the columns, nil means the default order
}

//NewSpectra returns a validated spectral table. The slices are copied.
func NewSpectra(wavelength, emission, absorption []float64) (*Spectra, error) {
	n := len(wavelength)
	if len(emission) != n || len(absorption) != n {
		return nil, NewError(MalformedInput, "NewSpectra", "columns have different lengths: %d wavelengths, %d emission, %d absorption values", n, len(emission), len(absorption))
	}
	if n < 2 {
		return nil, NewError(MalformedInput, "NewSpectra", "at least 2 rows are needed, got %d", n)
	}
	for i := 0; i < n; i++ {
		if !finite(wavelength[i]) || !finite(emission[i]) || !finite(absorption[i]) {
			return nil, NewError(MalformedInput, "NewSpectra", "non-finite value in row %d", i)
		}
	}
	S := &Spectra{
		wavelength: append([]float64(nil), wavelength...),
		emission:   append([]float64(nil), emission...),
		absorption: append([]float64(nil), absorption...),
		descending: wavelength[1] < wavelength[0],
	}
	for i := 1; i < n; i++ {
		d := wavelength[i] - wavelength[i-1]
		if d == 0 || (d < 0) != S.descending {
			return nil, NewError(MalformedInput, "NewSpectra", "wavelengths are not strictly monotonic at row %d (%g after %g)", i, wavelength[i], wavelength[i-1])
		}
	}
	return S, nil
}

//Len returns the number of rows in the table.
func (S *Spectra) Len() int { return len(S.wavelength) }

//Wavelength returns a copy of the wavelength column, in nm.
func (S *Spectra) Wavelength() []float64 { return append([]float64(nil), S.wavelength...) }

//Emission returns a copy of the donor emission column.
func (S *Spectra) Emission() []float64 { return append([]float64(nil), S.emission...) }

//Absorption returns a copy of the acceptor absorption column.
func (S *Spectra) Absorption() []float64 { return append([]float64(nil), S.absorption...) }

//Descending is true if the rows are sorted by decreasing wavelength.
func (S *Spectra) Descending() bool { return S.descending }

//Range returns the smallest and largest wavelengths in the table.
func (S *Spectra) Range() (float64, float64) {
	first, last := S.wavelength[0], S.wavelength[len(S.wavelength)-1]
	if S.descending {
		return last, first
	}
	return first, last
}

//AddExtra attaches a passthrough column to the table. It must have one cell per row,
//and its name can't be used by another column.
func (S *Spectra) AddExtra(name string, cells []string) error {
	if len(cells) != S.Len() {
		return NewError(MalformedInput, "Spectra.AddExtra", "column %q has %d cells, the table has %d rows", name, len(cells), S.Len())
	}
	if name == "" || S.hasColumn(name) {
		return NewError(MalformedInput, "Spectra.AddExtra", "column name %q is empty or already in use", name)
	}
	S.extra = append(S.extra, Extra{Name: name, Cells: append([]string(nil), cells...)})
	if S.columns != nil {
		S.columns = append(S.columns, name)
	}
	return nil
}

//Extras returns a copy of the passthrough columns, in the order they were added.
func (S *Spectra) Extras() []Extra {
	ret := make([]Extra, len(S.extra))
	for i, e := range S.extra {
		ret[i] = Extra{Name: e.Name, Cells: append([]string(nil), e.Cells...)}
	}
	return ret
}

//Columns returns the names of all the columns in table order. Unless SetColumns
//was used, the order is wavelength, emission, absorption and then the extras.
func (S *Spectra) Columns() []string {
	if S.columns != nil {
		return append([]string(nil), S.columns...)
	}
	cols := []string{ColWavelength, ColEmission, ColAbsorption}
	for _, e := range S.extra {
		cols = append(cols, e.Name)
	}
	return cols
}

//SetColumns sets the table order of the columns. names must contain every column
//of the table exactly once.
func (S *Spectra) SetColumns(names []string) error {
	const fn = "Spectra.SetColumns"
	want := S.Columns()
	if len(names) != len(want) {
		return NewError(MalformedInput, fn, "%d column names given, the table has %d columns", len(names), len(want))
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] || !S.hasColumn(n) {
			return NewError(MalformedInput, fn, "column %q is repeated or not in the table", n)
		}
		seen[n] = true
	}
	S.columns = append([]string(nil), names...)
	return nil
}

func (S *Spectra) hasColumn(name string) bool {
	switch name {
	case ColWavelength, ColEmission, ColAbsorption:
		return true
	}
	for _, e := range S.extra {
		if e.Name == name {
			return true
		}
	}
	return false
}

//RefIndex returns the row of the table that corresponds to the wavelength lambda.
//If lambda is not present in the table, the row with the smallest wavelength
//larger than lambda is used, so the result doesn't depend on the row order.
//lambda outside the range of the table is an error.
func (S *Spectra) RefIndex(lambda float64) (int, error) {
	lo, hi := S.Range()
	if !finite(lambda) || lambda < lo || lambda > hi {
		return -1, NewError(InvalidConfig, "Spectra.RefIndex", "reference wavelength %g nm outside the spectral range [%g, %g] nm", lambda, lo, hi)
	}
	asc := S.ascending(S.wavelength)
	i := sort.SearchFloat64s(asc, lambda)
	if asc[i] != lambda {
		logger.Debug().Float64("requested", lambda).Float64("used", asc[i]).Msg("reference wavelength not sampled, using next larger wavelength")
	}
	if S.descending {
		return len(asc) - 1 - i, nil
	}
	return i, nil
}

//ascending returns col in order of increasing wavelength. The result
//shares memory with col when the table is already ascending.
func (S *Spectra) ascending(col []float64) []float64 {
	if !S.descending {
		return col
	}
	return reversed(col)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
