/*
 * job.go, part of frettchen.
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
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"

	fret "github.com/rmera/frettchen"
	"github.com/rmera/frettchen/fnames"
	"github.com/rmera/frettchen/fretjson"
	"github.com/rmera/frettchen/fretplot"
	"github.com/rmera/frettchen/internal/config"
	"github.com/rmera/frettchen/xlsx"
)

//Tags of the optional outputs.
const (
	SpectraPlotTag    = "FRET-Spectra"
	EfficiencyPlotTag = "FRET-Efficiency"
	ReportTag         = "FRET-Report"
)

//job is one run of the model on one input file.
type job struct {
	file         string
	quantumYield float64
	extinction   float64
	wavelength   float64
	cfg          *config.Config
	log          zerolog.Logger
	stdout       io.Writer
	date         time.Time
}

func (j *job) name(tag, suffix string) string {
	n := fnames.Split(j.file).WithTag(tag).WithDate(j.date).WithSuffix(suffix)
	if j.cfg.OutDir != "" {
		n = n.WithFolder(j.cfg.OutDir)
	}
	return n.String()
}

//run fits the pair and writes the outputs. Every output is rendered in memory
//first, and the files are written all together or not at all.
func (j *job) run() error {
	P, err := fret.NewParams(j.quantumYield, j.cfg.KappaSquared, j.cfg.OpticalDensity, j.extinction, j.wavelength)
	if err != nil {
		return err
	}
	S, err := xlsx.ReadSpectra(j.file)
	if err != nil {
		return err
	}
	j.log.Debug().Int("rows", S.Len()).Bool("descending", S.Descending()).Int("extra_columns", len(S.Extras())).Msg("spectra loaded")
	F, err := fret.NewPair(P)
	if err != nil {
		return err
	}
	if err := F.LoadSpectra(S); err != nil {
		return err
	}
	if err := F.Fit(); err != nil {
		return err
	}
	fmt.Fprint(j.stdout, F.String())
	j.logSummary(F)

	files, err := j.prepare(F)
	if err != nil {
		return err
	}
	if err := fnames.WriteAll(files); err != nil {
		return err
	}
	for _, f := range files {
		j.log.Info().Str("file", f.Name).Int("bytes", len(f.Data)).Msg("written")
	}
	return nil
}

//prepare renders every requested output.
func (j *job) prepare(F *fret.Pair) ([]fnames.File, error) {
	var book bytes.Buffer
	if err := xlsx.WritePairTo(&book, F); err != nil {
		return nil, err
	}
	files := []fnames.File{{Name: j.name(j.cfg.Tag, "xlsx"), Data: book.Bytes()}}
	if j.cfg.Plot {
		for _, p := range []struct {
			tag  string
			draw func(*fret.Pair) (*plot.Plot, error)
		}{
			{SpectraPlotTag, fretplot.Spectra},
			{EfficiencyPlotTag, fretplot.Efficiency},
		} {
			pl, err := p.draw(F)
			if err != nil {
				return nil, err
			}
			img, err := fretplot.Render(pl, "png")
			if err != nil {
				return nil, err
			}
			files = append(files, fnames.File{Name: j.name(p.tag, "png"), Data: img})
		}
	}
	if j.cfg.JSON {
		R, err := fretjson.NewReport(F)
		if err != nil {
			return nil, err
		}
		suffix := "json"
		if j.cfg.Compress {
			suffix = "json.zst"
		}
		data, err := R.Encode(j.cfg.Compress)
		if err != nil {
			return nil, err
		}
		files = append(files, fnames.File{Name: j.name(ReportTag, suffix), Data: data})
	}
	return files, nil
}

func (j *job) logSummary(F *fret.Pair) {
	r0, _ := F.FoersterRadius()
	J, _ := F.OverlapIntegral()
	ev := j.log.Info().Float64("overlap_integral", J).Float64("foerster_radius_A", r0)
	if sum, err := fret.Summarize(F.Spectra()); err == nil {
		ev = ev.Float64("emission_peak_nm", sum.Emission.Peak).
			Float64("absorption_peak_nm", sum.Absorption.Peak).
			Float64("peak_shift_nm", sum.PeakShift)
	} else {
		j.log.Warn().Err(err).Msg("can't summarize the spectra")
	}
	ev.Msg("pair fitted")
}
