/*
 * spectra_test.go, part of frettchen.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpectraValidation(t *testing.T) {
	cases := []struct {
		name       string
		wl, em, ab []float64
	}{
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, []float64{1, 2, 3}},
		{"one row", []float64{500}, []float64{1}, []float64{1}},
		{"repeated wavelength", []float64{500, 500, 510}, []float64{1, 2, 3}, []float64{1, 2, 3}},
		{"not monotonic", []float64{500, 510, 505}, []float64{1, 2, 3}, []float64{1, 2, 3}},
		{"NaN", []float64{500, 510, 520}, []float64{1, math.NaN(), 3}, []float64{1, 2, 3}},
		{"Inf", []float64{500, 510, math.Inf(1)}, []float64{1, 2, 3}, []float64{1, 2, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewSpectra(c.wl, c.em, c.ab)
			require.Error(t, err)
			assert.True(t, IsKind(err, MalformedInput), "%v", err)
		})
	}
}

func TestSpectraCopiesInput(t *testing.T) {
	wl := []float64{500, 510, 520}
	S, err := NewSpectra(wl, []float64{1, 2, 3}, []float64{3, 2, 1})
	require.NoError(t, err)
	wl[0] = 1
	assert.Equal(t, 500.0, S.Wavelength()[0])
	S.Wavelength()[1] = 0
	assert.Equal(t, []float64{500, 510, 520}, S.Wavelength())
	lo, hi := S.Range()
	assert.Equal(t, 500.0, lo)
	assert.Equal(t, 520.0, hi)
}

func TestRefIndex(t *testing.T) {
	asc := testSpectra(t)
	desc, err := NewSpectra(reversed(testWavelength), reversed(testEmission), reversed(testAbsorption))
	require.NoError(t, err)
	cases := []struct {
		lambda   float64
		asc, des int
	}{
		{500, 0, 4},
		{700, 4, 0},
		{650, 3, 1},
		{601, 3, 1},
		{549.99, 1, 3},
	}
	for _, c := range cases {
		i, err := asc.RefIndex(c.lambda)
		require.NoError(t, err)
		assert.Equal(t, c.asc, i, "ascending, %g nm", c.lambda)
		i, err = desc.RefIndex(c.lambda)
		require.NoError(t, err)
		assert.Equal(t, c.des, i, "descending, %g nm", c.lambda)
	}
	for _, lambda := range []float64{499, 701, math.NaN()} {
		_, err := asc.RefIndex(lambda)
		assert.True(t, IsKind(err, InvalidConfig))
		_, err = desc.RefIndex(lambda)
		assert.True(t, IsKind(err, InvalidConfig))
	}
}

func TestExtras(t *testing.T) {
	S := testSpectra(t)
	require.NoError(t, S.AddExtra("comment", []string{"a", "b", "", "d", "e"}))
	err := S.AddExtra("short", []string{"a"})
	assert.True(t, IsKind(err, MalformedInput))
	require.Len(t, S.Extras(), 1)
	assert.Equal(t, "comment", S.Extras()[0].Name)

	err = S.AddExtra("comment", []string{"a", "b", "c", "d", "e"})
	assert.True(t, IsKind(err, MalformedInput), "repeated name: %v", err)
	err = S.AddExtra(ColWavelength, []string{"a", "b", "c", "d", "e"})
	assert.True(t, IsKind(err, MalformedInput), "name of a required column: %v", err)

	//Changing the returned columns doesn't change the table.
	ex := S.Extras()
	ex[0].Name = "changed"
	ex[0].Cells[0] = "changed"
	assert.Equal(t, Extra{Name: "comment", Cells: []string{"a", "b", "", "d", "e"}}, S.Extras()[0])
}

func TestColumns(t *testing.T) {
	S := testSpectra(t)
	require.NoError(t, S.AddExtra("note", []string{"", "", "", "", ""}))
	assert.Equal(t, []string{ColWavelength, ColEmission, ColAbsorption, "note"}, S.Columns())

	order := []string{ColAbsorption, "note", ColWavelength, ColEmission}
	require.NoError(t, S.SetColumns(order))
	assert.Equal(t, order, S.Columns())
	require.NoError(t, S.AddExtra("late", []string{"", "", "", "", ""}))
	assert.Equal(t, append(order, "late"), S.Columns())

	for _, bad := range [][]string{
		{ColAbsorption, "note", ColWavelength},
		{ColAbsorption, "note", ColWavelength, ColEmission, ColEmission},
		{ColAbsorption, "note", ColWavelength, ColEmission, "other"},
		{ColAbsorption, "note", ColWavelength, "late", "late"},
	} {
		err := S.SetColumns(bad)
		assert.True(t, IsKind(err, MalformedInput), "%v: %v", bad, err)
	}
	assert.Equal(t, append(order, "late"), S.Columns())
}
