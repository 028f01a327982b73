/*
 * fretjson.go, part of frettchen.
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

//Package fretjson serializes fitted FRET pairs to JSON reports, optionally compressed with z-standard.
package fretjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	fret "github.com/rmera/frettchen"
	"github.com/rmera/frettchen/fnames"
)

//Parameters are the inputs of the model.
type Parameters struct {
	QuantumYield         float64 `json:"donor_quantum_yield"`
	KappaSquared         float64 `json:"kappa_squared"`
	OpticalDensity       float64 `json:"optical_density"`
	Extinction           float64 `json:"acceptor_extinction_coefficient"`
	ExtinctionWavelength float64 `json:"extinction_wavelength_nm"`
}

//Row is one row of the spectral table, with the derived columns.
type Row struct {
	Wavelength         float64 `json:"wavelength_nm"`
	Emission           float64 `json:"donor_emission"`
	Absorption         float64 `json:"acceptor_absorption"`
	EmissionNormalized float64 `json:"donor_emission_normalized"`
	AbsorptionMolar    float64 `json:"acceptor_absorption_molar"`
	Overlap            float64 `json:"overlap"`
}

//Band is the position of a spectrum.
type Band struct {
	Peak float64 `json:"peak_nm"`
	Mean float64 `json:"mean_nm"`
}

//Report is a ready-to-serialize container for a fitted pair.
type Report struct {
	Parameters      Parameters `json:"parameters"`
	OverlapIntegral float64    `json:"overlap_integral"`
	FoersterRadius  float64    `json:"foerster_radius_angstrom"`
	ReferenceRow    int        `json:"reference_row"`
	Emission        *Band      `json:"emission,omitempty"`
	Absorption      *Band      `json:"absorption,omitempty"`
	Spectra         []Row      `json:"spectra"`
}

//NewReport collects the data of the fitted pair F. The band positions are left out
//if they can't be obtained (i.e. a spectrum without positive values).
func NewReport(F *fret.Pair) (*Report, error) {
	res, err := F.Result()
	if err != nil {
		return nil, fmt.Errorf("fretjson.NewReport: %w", err)
	}
	P := F.Params()
	S := F.Spectra()
	R := &Report{
		Parameters: Parameters{
			QuantumYield:         P.QuantumYield(),
			KappaSquared:         P.KappaSquared(),
			OpticalDensity:       P.OpticalDensity(),
			Extinction:           P.Extinction(),
			ExtinctionWavelength: P.ExtinctionWavelength(),
		},
		OverlapIntegral: res.OverlapIntegral,
		FoersterRadius:  res.FoersterRadius,
		ReferenceRow:    res.RefIndex,
		Spectra:         make([]Row, S.Len()),
	}
	if sum, err := fret.Summarize(S); err == nil {
		R.Emission = &Band{Peak: sum.Emission.Peak, Mean: sum.Emission.Mean}
		R.Absorption = &Band{Peak: sum.Absorption.Peak, Mean: sum.Absorption.Mean}
	}
	wl, em, ab := S.Wavelength(), S.Emission(), S.Absorption()
	for i := range R.Spectra {
		R.Spectra[i] = Row{
			Wavelength:         wl[i],
			Emission:           em[i],
			Absorption:         ab[i],
			EmissionNormalized: res.EmissionNormalized[i],
			AbsorptionMolar:    res.AbsorptionMolar[i],
			Overlap:            res.Overlap[i],
		}
	}
	return R, nil
}

//Send encodes the report as JSON to out.
func (R *Report) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(R); err != nil {
		return fmt.Errorf("fretjson.Report.Send: %w", err)
	}
	return nil
}

//Compressed is true if name asks for a z-standard compressed file.
func Compressed(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".zst")
}

//Encode returns the report as JSON, compressed with z-standard if compress is true.
func (R *Report) Encode(compress bool) ([]byte, error) {
	var buf bytes.Buffer
	if !compress {
		if err := R.Send(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	z, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("fretjson.Report.Encode: %w", err)
	}
	if err := R.Send(z); err != nil {
		z.Close()
		return nil, err
	}
	if err := z.Close(); err != nil {
		return nil, fmt.Errorf("fretjson.Report.Encode: %w", err)
	}
	return buf.Bytes(), nil
}

//WriteFile writes the report to name, compressed with z-standard if name ends in .zst.
func (R *Report) WriteFile(name string) error {
	b, err := R.Encode(Compressed(name))
	if err != nil {
		return err
	}
	return fnames.WriteAtomic(name, func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	})
}

//ReadFile reads a report written by WriteFile.
func ReadFile(name string) (*Report, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("fretjson.ReadFile: %w", err)
	}
	defer f.Close()
	var in io.Reader = f
	if Compressed(name) {
		z, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("fretjson.ReadFile: %w", err)
		}
		defer z.Close()
		in = z
	}
	R := new(Report)
	if err := json.NewDecoder(in).Decode(R); err != nil {
		return nil, fmt.Errorf("fretjson.ReadFile: %s: %w", name, err)
	}
	return R, nil
}
