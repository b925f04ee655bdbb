/*
 * plot_test.go
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rmera/grotop"
	"github.com/rmera/grotop/top"
)

func testSummary() *grotop.Summary {
	return &grotop.Summary{
		Templates: []grotop.TemplateCount{{Name: "Protein", Atoms: 120}, {Name: "SOL", Atoms: 3}, {Name: "NA", Atoms: 1}},
		Molecules: []top.Occurrence{{Name: "Protein", Count: 1}, {Name: "SOL", Count: 500}, {Name: "NA", Count: 4}, {Name: "Protein", Count: 1}},
	}
}

func TestComposition(Te *testing.T) {
	got := Composition(testSummary(), []string{"SOL"})
	want := []Share{{Name: "Protein", Copies: 2, Atoms: 240}, {Name: "NA", Copies: 4, Atoms: 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		Te.Errorf("Composition mismatch (-want +got):\n%s", diff)
	}
}

// TestCompositionPlot writes the composition chart of a small system.
func TestCompositionPlot(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "composition")
	if err := CompositionPlot(testSummary(), nil, "Test composition", name); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name + ".png"); err != nil || fi.Size() == 0 {
		Te.Errorf("The plot was not written: %v", err)
	}
	if err := CompositionPlot(testSummary(), []string{"Protein", "SOL", "NA"}, "Empty", name); err == nil {
		Te.Error("Plotting nothing should fail")
	}
}
