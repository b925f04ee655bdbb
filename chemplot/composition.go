/*
 * composition.go, part of gochem
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rmera/grotop"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Share is the number of atoms that all the copies of one molecule type
// contribute to a system.
type Share struct {
	Name   string
	Copies int
	Atoms  int
}

// Composition returns the atoms contributed by each molecule type in the
// system described by sum, in the order the types first appear in the
// [ molecules ] section. Molecule types named in exclude are left out.
func Composition(sum *grotop.Summary, exclude []string) []Share {
	natoms := make(map[string]int, len(sum.Templates))
	for _, v := range sum.Templates {
		if _, ok := natoms[v.Name]; !ok {
			natoms[v.Name] = v.Atoms
		}
	}
	var ret []Share
	index := make(map[string]int)
	for _, v := range sum.Molecules {
		if isInString(exclude, v.Name) {
			continue
		}
		i, ok := index[v.Name]
		if !ok {
			i = len(ret)
			index[v.Name] = i
			ret = append(ret, Share{Name: v.Name})
		}
		ret[i].Copies += v.Count
		ret[i].Atoms += v.Count * natoms[v.Name]
	}
	return ret
}

/*CompositionPlot produces a bar chart, in png format, with the number of atoms each
  molecule type contributes to the system described by sum. Molecule types in exclude
  (the solvent, for instance) are not plotted. The extension is added to plotname.
  Returns an error or nil*/
func CompositionPlot(sum *grotop.Summary, exclude []string, title, plotname string) error {
	shares := Composition(sum, exclude)
	if len(shares) == 0 {
		return fmt.Errorf("CompositionPlot: Nothing to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = "Atoms"
	p.Y.Min = 0
	names := make([]string, 0, len(shares))
	for key, val := range shares {
		bar, err := plotter.NewBarChart(plotter.Values{float64(val.Atoms)}, vg.Points(20))
		if err != nil {
			return err
		}
		bar.XMin = float64(key)
		r, g, b := colors(key, len(shares))
		bar.Color = color.RGBA{R: r, B: b, G: g, A: 255}
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
		names = append(names, fmt.Sprintf("%s (%d)", val.Name, val.Copies))
	}
	p.NominalX(names...)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(vg.Length(len(shares)+3)*vg.Inch, 4*vg.Inch, filename)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	//conversion:=math.Sqrt(3*math.Pow(maxcolor,2))*v
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = p
	case 1:
		r = q
		g = v
		b = p
	case 2:
		r = p
		g = v
		b = t
	case 3:
		r = p
		g = q
		b = v
	case 4:
		r = t
		g = p
		b = v
	default: //case 5
		r = v
		g = p
		b = q
	}

	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64((float64(key) * norm) + 20.0)
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	s := 1.0
	v := 1.0
	r, g, b = iHVS2RGB(h, v, s)
	return r, g, b
}
