/*
 * plot.go, part of gosoap.
 *
 * Copyright 2023 The gosoap developers
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

//Package soapplot draws radial-integral curves, mostly as a debugging and
//documentation aid: one line per (l, n) channel of I_nl(r) over the basis
//support.
package soapplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/gosoap/radial"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Channel picks one (l, n) curve to draw.
type Channel struct {
	L int
	N int
}

func basicRadialPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = vg.Millimeter * 3
	p.Title.Text = title
	p.X.Label.Text = "r"
	p.Y.Label.Text = "I_nl(r)"
	p.Add(plotter.NewGrid())
	return p
}

//RadialIntegrals plots the selected channels of the evaluator over
//[0, cutoff] with npoints samples per curve, and saves the result as a PNG
//with the given name (the extension must be included). A nil or empty
//channel list plots every channel of the table.
func RadialIntegrals(code radial.Integral, params radial.Parameters, channels []Channel, npoints int, title, plotname string) error {
	if npoints < 2 {
		return fmt.Errorf("soapplot: need at least 2 points per curve, got %d", npoints)
	}
	points, err := radial.SampleEvaluator(code, params, npoints)
	if err != nil {
		return err
	}
	if len(channels) == 0 {
		for l := 0; l <= params.MaxAngular; l++ {
			for n := 0; n < params.MaxRadial; n++ {
				channels = append(channels, Channel{L: l, N: n})
			}
		}
	}
	p := basicRadialPlot(title)
	for key, ch := range channels {
		if ch.L < 0 || ch.L > params.MaxAngular || ch.N < 0 || ch.N >= params.MaxRadial {
			return fmt.Errorf("soapplot: channel (l=%d, n=%d) outside the (%d x %d) table", ch.L, ch.N, params.MaxAngular+1, params.MaxRadial)
		}
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i].X = pt.Distance
			xys[i].Y = pt.Values[ch.L][ch.N]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(channels))
		line.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("n=%d l=%d", ch.N, ch.L), line)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, plotname)
}

//colors spreads the curves over the hue circle.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	h := float64(key)*norm + 20.0
	if h >= 55 {
		h += 40
	}
	return iHVS2RGB(h, 1.0, 1.0)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	maxcolor := 255.0
	if s == 0.0 {
		gray := v * maxcolor
		return uint8(gray), uint8(gray), uint8(gray)
	}
	h = h / 60
	i := float64(int(h) % 6)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}
