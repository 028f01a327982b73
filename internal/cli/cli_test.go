/*
 * cli_test.go, part of frettchen.
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

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rmera/frettchen/fretjson"
	"github.com/rmera/frettchen/xlsx"
)

var runDate = time.Date(2020, time.April, 20, 16, 45, 5, 0, time.UTC)

func inputBook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "spectra"))
	rows := [][]interface{}{
		{"wavelength_[nm]", "donor_emission", "acceptor_absorption"},
		{500, 0, 0},
		{550, 1, 0},
		{600, 2, 1},
		{650, 1, 2},
		{700, 0, 1},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("spectra", cell, &r))
	}
	name := filepath.Join(t.TempDir(), "cy3-cy5.xlsx")
	require.NoError(t, f.SaveAs(name))
	return name
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(&stdout, &stderr, func() time.Time { return runDate })
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func exitCode(err error) int {
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	return -1
}

func TestMissingFlags(t *testing.T) {
	_, stderr, err := execute(t, "-q", "0.15")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	want := "error 1: fret spectra need to be defined\n" +
		"error 2: molar extinction coefficient of acceptor needs to be defined\n" +
		"error 3: molar extinction coefficient wavelength needs to be defined\n" +
		"Program exits with 3 error messages.\n"
	assert.Equal(t, want, stderr)
}

func TestRun(t *testing.T) {
	in := inputBook(t)
	stdout, _, err := execute(t, "-f", in, "-q", "0.15", "-e", "250000", "-l", "650", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Foerster Radius [A]: 61.538")

	out := filepath.Join(filepath.Dir(in), "cy3-cy5_FRET-Model_200420.xlsx")
	require.FileExists(t, out)
	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{xlsx.SpectraSheet, xlsx.ModelSheet}, f.GetSheetList())
	r0, err := f.GetCellValue(xlsx.ModelSheet, "B8", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r0, "61.5381990516"), r0)
}

func TestRunAllOutputs(t *testing.T) {
	in := inputBook(t)
	outDir := t.TempDir()
	_, _, err := execute(t, "-f", in, "-q", "0.15", "-k", "0.6666666666666666", "-n", "1.33",
		"-e", "250000", "-l", "650", "--plot", "--json", "--compress", "--out-dir", outDir, "--tag", "Cy3Cy5")
	require.NoError(t, err)
	for _, name := range []string{
		"cy3-cy5_Cy3Cy5_200420.xlsx",
		"cy3-cy5_FRET-Spectra_200420.png",
		"cy3-cy5_FRET-Efficiency_200420.png",
		"cy3-cy5_FRET-Report_200420.json.zst",
	} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
	R, err := fretjson.ReadFile(filepath.Join(outDir, "cy3-cy5_FRET-Report_200420.json.zst"))
	require.NoError(t, err)
	assert.InEpsilon(t, 61.538199051696864, R.FoersterRadius, 1e-12)
	entries, err := os.ReadDir(filepath.Dir(in))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "nothing is written next to the input when --out-dir is given")
}

func TestRunErrorsWriteNothing(t *testing.T) {
	in := inputBook(t)
	cases := map[string][]string{
		"wavelength out of range": {"-f", in, "-q", "0.15", "-e", "250000", "-l", "800"},
		"negative quantum yield":  {"-f", in, "-q", "-0.15", "-e", "250000", "-l", "650"},
		"zero optical density":    {"-f", in, "-q", "0.15", "-n", "0", "-e", "250000", "-l", "650"},
		"zero absorption":         {"-f", in, "-q", "0.15", "-e", "250000", "-l", "500"},
		"missing file":            {"-f", in + ".missing", "-q", "0.15", "-e", "250000", "-l", "650"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, stderr, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, 1, exitCode(err))
			assert.Contains(t, stderr, "no output written")
			entries, err := os.ReadDir(filepath.Dir(in))
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestBlockedOutputWritesNothing(t *testing.T) {
	in := inputBook(t)
	outDir := t.TempDir()
	blocked := filepath.Join(outDir, "cy3-cy5_FRET-Report_200420.json")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "keep"), 0o755))

	_, stderr, err := execute(t, "-f", in, "-q", "0.15", "-e", "250000", "-l", "650",
		"--plot", "--json", "--out-dir", outDir)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, stderr, "no output written")
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the blocking folder is left")
	assert.Equal(t, filepath.Base(blocked), entries[0].Name())
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(old)) })
}
