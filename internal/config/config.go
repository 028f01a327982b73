/*
 * config.go, part of frettchen.
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

//Package config layers the frettchen settings: defaults, an optional config file,
//FRETTCHEN_* environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	fret "github.com/rmera/frettchen"
)

//Keys, which are also the long names of the flags bound to them.
const (
	KeyKappaSquared   = "kappa2"
	KeyOpticalDensity = "optical-density"
	KeyTag            = "tag"
	KeyLogLevel       = "log-level"
	KeyOutDir         = "out-dir"
	KeyPlot           = "plot"
	KeyJSON           = "json"
	KeyCompress       = "compress"
)

//EnvPrefix is the prefix of the environment variables read, e.g. FRETTCHEN_LOG_LEVEL.
const EnvPrefix = "FRETTCHEN"

//Config holds the optional settings of a run. The required pair data (input file,
//quantum yield, extinction coefficient and its wavelength) never come from here.
type Config struct {
	KappaSquared   float64
	OpticalDensity float64
	Tag            string
	LogLevel       zerolog.Level
	OutDir         string //empty means the folder of the input file
	Plot           bool
	JSON           bool
	Compress       bool
}

//New returns a viper instance with the defaults, the environment and, if given,
//the flags in flags bound. If configFile is empty, frettchen.yaml is looked for in the
//working directory and in $HOME/.config/frettchen; not finding it is not an error.
func New(flags *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyKappaSquared, fret.DefaultKappaSquared)
	v.SetDefault(KeyOpticalDensity, fret.DefaultOpticalDensity)
	v.SetDefault(KeyTag, "FRET-Model")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyOutDir, "")
	v.SetDefault(KeyPlot, false)
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyCompress, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("frettchen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/frettchen")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.New: reading config file: %w", err)
		}
	}
	if flags != nil {
		for _, k := range []string{KeyKappaSquared, KeyOpticalDensity, KeyTag, KeyLogLevel, KeyOutDir, KeyPlot, KeyJSON, KeyCompress} {
			if f := flags.Lookup(k); f != nil {
				if err := v.BindPFlag(k, f); err != nil {
					return nil, fmt.Errorf("config.New: %w", err)
				}
			}
		}
	}
	return v, nil
}

//Load reads the settings from v.
func Load(v *viper.Viper) (*Config, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString(KeyLogLevel)))
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	tag := v.GetString(KeyTag)
	if tag == "" || strings.ContainsAny(tag, `/\`) {
		return nil, fmt.Errorf("config.Load: invalid output tag %q", tag)
	}
	return &Config{
		KappaSquared:   v.GetFloat64(KeyKappaSquared),
		OpticalDensity: v.GetFloat64(KeyOpticalDensity),
		Tag:            tag,
		LogLevel:       level,
		OutDir:         v.GetString(KeyOutDir),
		Plot:           v.GetBool(KeyPlot),
		JSON:           v.GetBool(KeyJSON),
		Compress:       v.GetBool(KeyCompress),
	}, nil
}
