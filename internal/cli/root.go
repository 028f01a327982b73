/*
 * root.go, part of frettchen.
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

//Package cli implements the frettchen command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	fret "github.com/rmera/frettchen"
	"github.com/rmera/frettchen/internal/config"
)

const long = `A tool to model FRET Pairs

Computes the Förster radius of a donor-acceptor pair from the donor emission and
acceptor absorption spectra in the sheet 'spectra' of an xlsx workbook. The spectra,
with the derived columns, and the model are written to
<folder>/<name>_<tag>_<YYMMDD>.xlsx next to the input file.

This program comes with ABSOLUTELY NO WARRANTY;
This is free software, and you are welcome to redistribute it under certain conditions;
<https://www.gnu.org/licenses/>`

//ExitError carries the exit status of a failed run.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

//options holds the flags that are not managed by the config package.
type options struct {
	file         string
	quantumYield float64
	extinction   float64
	wavelength   float64
	configFile   string

	stdout, stderr io.Writer
	now            func() time.Time
}

//NewRootCmd returns the frettchen command writing its results to stdout and its
//diagnostics to stderr. now gives the date stamped in the output names.
func NewRootCmd(stdout, stderr io.Writer, now func() time.Time) *cobra.Command {
	o := &options{stdout: stdout, stderr: stderr, now: now}
	cmd := &cobra.Command{
		Use:           "frettchen -f spectra.xlsx -q QY -e EPSILON -l LAMBDA",
		Short:         "A tool to model FRET pairs",
		Long:          long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.SortFlags = false
	f.StringVarP(&o.file, "file", "f", "", "Excel file comprising spectra information in sheet 'spectra'.")
	f.Float64VarP(&o.quantumYield, "quantum-yield", "q", 0, "Quantum yield of donor.")
	f.Float64P(config.KeyKappaSquared, "k", fret.DefaultKappaSquared, "Factor for relative dipole-dipole orientation (kappa^2).")
	f.Float64P(config.KeyOpticalDensity, "n", fret.DefaultOpticalDensity, "Refractive index of solvent.")
	f.Float64VarP(&o.extinction, "extinction", "e", 0, "Extinction coefficient of acceptor in [1/(M*cm)].")
	f.Float64VarP(&o.wavelength, "wavelength", "l", 0, "Wavelength at which extinction coefficient is measured in [nm].")
	f.String(config.KeyTag, "FRET-Model", "Label added to the output file names.")
	f.String(config.KeyOutDir, "", "Folder for the output files (default: the folder of the input file).")
	f.Bool(config.KeyPlot, false, "Also plot the spectra and the efficiency curve (png).")
	f.Bool(config.KeyJSON, false, "Also write a JSON report.")
	f.Bool(config.KeyCompress, false, "Compress the JSON report with z-standard.")
	f.String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error).")
	f.StringVar(&o.configFile, "config", "", "Config file (default: ./frettchen.yaml or $HOME/.config/frettchen/frettchen.yaml).")
	return cmd
}

//checkRequired prints one numbered line for each missing required flag.
//It returns the number of missing flags.
func (o *options) checkRequired(cmd *cobra.Command) int {
	required := []struct{ flag, msg string }{
		{"file", "fret spectra need to be defined"},
		{"quantum-yield", "quantum yield of donor needs to be defined"},
		{"extinction", "molar extinction coefficient of acceptor needs to be defined"},
		{"wavelength", "molar extinction coefficient wavelength needs to be defined"},
	}
	n := 0
	for _, r := range required {
		if !cmd.Flags().Changed(r.flag) {
			n++
			fmt.Fprintf(o.stderr, "error %d: %s\n", n, r.msg)
		}
	}
	if n > 0 {
		fmt.Fprintf(o.stderr, "Program exits with %d error messages.\n", n)
	}
	return n
}

func (o *options) run(cmd *cobra.Command) error {
	if n := o.checkRequired(cmd); n > 0 {
		return &ExitError{Code: 2, Err: fmt.Errorf("%d required flags missing", n)}
	}
	v, err := config.New(cmd.Flags(), o.configFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: o.stderr, TimeFormat: time.Kitchen}).
		Level(cfg.LogLevel).With().Timestamp().Logger()
	fret.SetLogger(log)
	defer fret.SetLogger(zerolog.Nop())

	job := &job{
		file:         o.file,
		quantumYield: o.quantumYield,
		extinction:   o.extinction,
		wavelength:   o.wavelength,
		cfg:          cfg,
		log:          log,
		stdout:       o.stdout,
		date:         o.now(),
	}
	if err := job.run(); err != nil {
		log.Error().Err(err).Str("file", o.file).Msg("frettchen failed, no output written")
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

//Execute runs the command with the process arguments and returns the exit status.
func Execute() int {
	cmd := NewRootCmd(os.Stdout, os.Stderr, time.Now)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return 1
}
