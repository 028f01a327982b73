/*
 * config_test.go, part of frettchen.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fret "github.com/rmera/frettchen"
)

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64P(KeyKappaSquared, "k", fret.DefaultKappaSquared, "")
	fs.Float64P(KeyOpticalDensity, "n", fret.DefaultOpticalDensity, "")
	fs.String(KeyLogLevel, "info", "")
	fs.Bool(KeyPlot, false, "")
	return fs
}

func TestDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	v, err := New(nil, "")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, fret.DefaultKappaSquared, c.KappaSquared)
	assert.Equal(t, 1.33, c.OpticalDensity)
	assert.Equal(t, "FRET-Model", c.Tag)
	assert.Equal(t, zerolog.InfoLevel, c.LogLevel)
	assert.False(t, c.Plot)
	assert.Equal(t, "", c.OutDir)
}

func TestLayers(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "frettchen.yaml"),
		[]byte("optical-density: 1.4\nlog-level: debug\ntag: Cy3Cy5\nplot: true\n"), 0o644))
	t.Setenv("FRETTCHEN_LOG_LEVEL", "warn")
	t.Setenv("FRETTCHEN_OUT_DIR", "/tmp/results")

	fs := flagSet()
	require.NoError(t, fs.Parse([]string{"-k", "1.0"}))
	v, err := New(fs, "")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.KappaSquared, "flag")
	assert.Equal(t, 1.4, c.OpticalDensity, "file")
	assert.Equal(t, zerolog.WarnLevel, c.LogLevel, "env over file")
	assert.Equal(t, "Cy3Cy5", c.Tag, "file")
	assert.True(t, c.Plot, "file over unset flag")
	assert.Equal(t, "/tmp/results", c.OutDir, "env")

	require.NoError(t, fs.Parse([]string{"--log-level", "error"}))
	c, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, c.LogLevel, "flag over env")
}

func TestExplicitConfigFile(t *testing.T) {
	_, err := New(nil, filepath.Join(t.TempDir(), "nothere.yaml"))
	assert.Error(t, err)

	name := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(name, []byte("kappa2: 0.476\n"), 0o644))
	v, err := New(nil, name)
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 0.476, c.KappaSquared)
}

func TestInvalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FRETTCHEN_LOG_LEVEL", "loud")
	v, err := New(nil, "")
	require.NoError(t, err)
	_, err = Load(v)
	assert.Error(t, err)

	t.Setenv("FRETTCHEN_LOG_LEVEL", "info")
	t.Setenv("FRETTCHEN_TAG", "a/b")
	_, err = Load(v)
	assert.Error(t, err)
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
