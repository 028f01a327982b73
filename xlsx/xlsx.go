/*
 * xlsx.go, part of frettchen.
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

//Package xlsx reads spectral tables from, and writes fitted FRET pairs to, xlsx workbooks.
package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	fret "github.com/rmera/frettchen"
	"github.com/rmera/frettchen/fnames"
)

//Sheet names
const (
	SpectraSheet = "spectra"
	ModelSheet   = "FRET"
)

//ModelParameters are the names in the "parameter" column of the FRET sheet, in order.
var ModelParameters = []string{
	"donor quantum yield",
	"K^2",
	"optical density",
	"molar extinction coefficient acceptor [M^-1 cm^-1]",
	"extinction coefficient wavelength [nm]",
	"overlap integral",
	"Foerster Radius [A]",
}

var required = []string{fret.ColWavelength, fret.ColEmission, fret.ColAbsorption}

//ReadSpectra reads the sheet "spectra" of the workbook in name.
func ReadSpectra(name string) (*fret.Spectra, error) {
	f, err := excelize.OpenFile(name)
	if err != nil {
		return nil, fret.NewError(fret.MalformedInput, "xlsx.ReadSpectra", "can't open workbook %s: %v", name, err)
	}
	defer f.Close()
	S, err := readSpectra(f)
	if err != nil {
		return nil, decorate(err, "xlsx.ReadSpectra: "+name)
	}
	return S, nil
}

//ReadSpectraFrom is like ReadSpectra, but takes the workbook from r.
func ReadSpectraFrom(r io.Reader) (*fret.Spectra, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fret.NewError(fret.MalformedInput, "xlsx.ReadSpectraFrom", "can't read workbook: %v", err)
	}
	defer f.Close()
	S, err := readSpectra(f)
	if err != nil {
		return nil, decorate(err, "xlsx.ReadSpectraFrom")
	}
	return S, nil
}

//readSpectra takes the table from the spectra sheet. The header row must contain the
//wavelength, emission and absorption columns, in any order. Every other column is kept
//as an extra, and the order of the columns is kept too. Completely empty rows are skipped.
func readSpectra(f *excelize.File) (*fret.Spectra, error) {
	const fn = "readSpectra"
	if idx, err := f.GetSheetIndex(SpectraSheet); err != nil || idx < 0 {
		return nil, fret.NewError(fret.MalformedInput, fn, "no sheet named %q", SpectraSheet)
	}
	rows, err := f.GetRows(SpectraSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fret.NewError(fret.MalformedInput, fn, "can't read sheet %q: %v", SpectraSheet, err)
	}
	if len(rows) == 0 {
		return nil, fret.NewError(fret.MalformedInput, fn, "sheet %q is empty", SpectraSheet)
	}
	header := columnNames(rows)
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	var missing []string
	for _, r := range required {
		if _, ok := cols[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return nil, fret.NewError(fret.MalformedInput, fn, "missing column(s) %s in sheet %q", strings.Join(missing, ", "), SpectraSheet)
	}

	data := make([][]float64, len(required))
	cells := make([][]string, len(header))
	for r, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		for k, name := range required {
			cell := cellAt(row, cols[name])
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fret.NewError(fret.MalformedInput, fn, "row %d, column %q: %q is not a number", r+2, name, cell)
			}
			data[k] = append(data[k], v)
		}
		for i := range header {
			cells[i] = append(cells[i], cellAt(row, i))
		}
	}
	S, err := fret.NewSpectra(data[0], data[1], data[2])
	if err != nil {
		return nil, decorate(err, fn)
	}
	for i, h := range header {
		if isRequired(h) {
			continue
		}
		if err := S.AddExtra(h, cells[i]); err != nil {
			return nil, decorate(err, fn)
		}
	}
	if err := S.SetColumns(header); err != nil {
		return nil, decorate(err, fn)
	}
	return S, nil
}

//columnNames returns one unique name for each column of the table. Columns with a
//blank header are called "Unnamed: <i>", with i the 0-based column number, and
//repeated names get a ".<n>" suffix, as spreadsheet tools usually do.
func columnNames(rows [][]string) []string {
	n := 0
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	names := make([]string, n)
	used := make(map[string]bool, n)
	for i := range names {
		h := strings.TrimSpace(cellAt(rows[0], i))
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for k := 1; used[name]; k++ {
			name = fmt.Sprintf("%s.%d", h, k)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

//WritePair writes the fitted pair F to the workbook name. The file only
//appears once it has been completely written.
func WritePair(name string, F *fret.Pair) error {
	return fnames.WriteAtomic(name, func(w io.Writer) error {
		return WritePairTo(w, F)
	})
}

//WritePairTo writes the workbook for the fitted pair F to w. The workbook has
//two sheets: "spectra", with the input columns and the three derived ones,
//and "FRET", with the parameters and results of the model.
func WritePairTo(w io.Writer, F *fret.Pair) error {
	res, err := F.Result()
	if err != nil {
		return decorate(err, "xlsx.WritePairTo")
	}
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), SpectraSheet); err != nil {
		return fmt.Errorf("xlsx.WritePairTo: %w", err)
	}
	if err := writeSpectra(f, F.Spectra(), res); err != nil {
		return fmt.Errorf("xlsx.WritePairTo: %w", err)
	}
	if _, err := f.NewSheet(ModelSheet); err != nil {
		return fmt.Errorf("xlsx.WritePairTo: %w", err)
	}
	if err := writeModel(f, F.Params(), res); err != nil {
		return fmt.Errorf("xlsx.WritePairTo: %w", err)
	}
	return f.Write(w)
}

//writeSpectra writes the columns of S in table order, followed by the derived
//columns. A derived column that is already in the table (e.g. when a workbook
//written by frettchen is fitted again) is overwritten in place.
func writeSpectra(f *excelize.File, S *fret.Spectra, res *fret.Result) error {
	columns := map[string][]interface{}{
		fret.ColWavelength: floatCells(S.Wavelength()),
		fret.ColEmission:   floatCells(S.Emission()),
		fret.ColAbsorption: floatCells(S.Absorption()),
	}
	for _, e := range S.Extras() {
		c := make([]interface{}, len(e.Cells))
		for i, v := range e.Cells {
			c[i] = cellValue(v)
		}
		columns[e.Name] = c
	}
	header := S.Columns()
	for _, d := range []struct {
		name string
		vals []float64
	}{
		{fret.ColEmissionNormalized, res.EmissionNormalized},
		{fret.ColAbsorptionMolar, res.AbsorptionMolar},
		{fret.ColOverlap, res.Overlap},
	} {
		if _, ok := columns[d.name]; !ok {
			header = append(header, d.name)
		}
		columns[d.name] = floatCells(d.vals)
	}
	row := make([]interface{}, len(header))
	for j, h := range header {
		row[j] = h
	}
	if err := f.SetSheetRow(SpectraSheet, "A1", &row); err != nil {
		return err
	}
	for i := 0; i < S.Len(); i++ {
		row := make([]interface{}, len(header))
		for j, h := range header {
			row[j] = columns[h][i]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SpectraSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func floatCells(v []float64) []interface{} {
	c := make([]interface{}, len(v))
	for i := range v {
		c[i] = v[i]
	}
	return c
}

func writeModel(f *excelize.File, P *fret.Params, res *fret.Result) error {
	values := []float64{
		P.QuantumYield(),
		P.KappaSquared(),
		P.OpticalDensity(),
		P.Extinction(),
		P.ExtinctionWavelength(),
		res.OverlapIntegral,
		res.FoersterRadius,
	}
	if err := f.SetSheetRow(ModelSheet, "A1", &[]interface{}{"parameter", "values"}); err != nil {
		return err
	}
	for i, p := range ModelParameters {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ModelSheet, cell, &[]interface{}{p, values[i]}); err != nil {
			return err
		}
	}
	return nil
}

//cellValue returns numbers as float64 so they are written as numeric cells.
//Empty cells stay empty.
func cellValue(s string) interface{} {
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func isRequired(h string) bool {
	for _, r := range required {
		if h == r {
			return true
		}
	}
	return false
}

//decorate adds the caller to the trail of a *fret.Error.
func decorate(err error, caller string) error {
	if ferr, ok := err.(*fret.Error); ok {
		ferr.Decorate(caller)
	}
	return err
}
