/*
 * fretplot.go, part of frettchen.
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

//Package fretplot draws the spectra of a fitted FRET pair and its transfer efficiency curve.
package fretplot

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	fret "github.com/rmera/frettchen"
	"github.com/rmera/frettchen/fnames"
)

//Size of the saved plots
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

//xys pairs x and y, scaling y so its maximum is 1 when scale is true.
func xys(x, y []float64, scale bool) plotter.XYs {
	y = append([]float64(nil), y...)
	if m := floats.Max(y); scale && m > 0 {
		floats.Scale(1/m, y)
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

//Spectra plots the normalized donor emission, the molar acceptor absorption and the
//overlap function of the fitted pair F against the wavelength. Each curve is scaled to
//a maximum of 1, as they have different units.
func Spectra(F *fret.Pair) (*plot.Plot, error) {
	res, err := F.Result()
	if err != nil {
		return nil, fmt.Errorf("fretplot.Spectra: %w", err)
	}
	wl := F.Spectra().Wavelength()
	p := basicPlot("Spectral overlap", "Wavelength (nm)", "Relative intensity")
	err = plotutil.AddLines(p,
		"donor emission", xys(wl, res.EmissionNormalized, true),
		"acceptor absorption", xys(wl, res.AbsorptionMolar, true),
		"overlap J(λ)", xys(wl, res.Overlap, true))
	if err != nil {
		return nil, fmt.Errorf("fretplot.Spectra: %w", err)
	}
	return p, nil
}

//Efficiency plots the transfer efficiency of the fitted pair F between 0 and
//2.5 times its Förster radius, and marks the radius itself.
func Efficiency(F *fret.Pair) (*plot.Plot, error) {
	r0, err := F.FoersterRadius()
	if err != nil {
		return nil, fmt.Errorf("fretplot.Efficiency: %w", err)
	}
	p := basicPlot(fmt.Sprintf("FRET efficiency, R0 = %.2f Å", r0), "Distance (Å)", "Efficiency")
	p.Y.Min = 0
	p.Y.Max = 1
	if r0 == 0 {
		return p, nil
	}
	r, e, err := F.EfficiencyCurve(2.5*r0, 250)
	if err != nil {
		return nil, fmt.Errorf("fretplot.Efficiency: %w", err)
	}
	if err := plotutil.AddLines(p, "E(r)", xys(r, e, false)); err != nil {
		return nil, fmt.Errorf("fretplot.Efficiency: %w", err)
	}
	s, err := plotter.NewScatter(plotter.XYs{{X: r0, Y: 0.5}})
	if err != nil {
		return nil, fmt.Errorf("fretplot.Efficiency: %w", err)
	}
	s.GlyphStyle.Shape = plotutil.Shape(1)
	s.GlyphStyle.Radius = vg.Points(4)
	p.Add(s)
	p.Legend.Add("R0", s)
	return p, nil
}

//Render draws p in the given format (png, svg, pdf, eps...) and returns the encoded image.
func Render(p *plot.Plot, format string) ([]byte, error) {
	wt, err := p.WriterTo(Width, Height, strings.ToLower(format))
	if err != nil {
		return nil, fmt.Errorf("fretplot.Render: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("fretplot.Render: %w", err)
	}
	return buf.Bytes(), nil
}

//Save writes p to name. The format is taken from the extension.
func Save(p *plot.Plot, name string) error {
	b, err := Render(p, strings.TrimPrefix(filepath.Ext(name), "."))
	if err != nil {
		return fmt.Errorf("fretplot.Save: %w", err)
	}
	return fnames.WriteAtomic(name, func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	})
}
