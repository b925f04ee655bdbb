package grotop

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rmera/grotop/top"
)

func quietOptions() *top.Options {
	O := top.DefaultOptions()
	O.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return O
}

func readTop(Te *testing.T, content string, opts *top.Options) *top.Topology {
	Te.Helper()
	if opts == nil {
		opts = quietOptions()
	}
	t := top.NewTopology(opts)
	if err := t.FillReader(strings.NewReader(content), filepath.Join(Te.TempDir(), "test.top")); err != nil {
		Te.Fatal(err)
	}
	return t
}

const waterTop = `[ atomtypes ]
OW 15.999
[ moleculetype ]
W 1
[ atoms ]
1 OW 1 SOL OW 1 0.0
[ molecules ]
W 3
`

func TestBuildWater(Te *testing.T) {
	t := readTop(Te, waterTop, nil)
	ats, err := BuildAtoms(t)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ats) != 3 {
		Te.Fatalf("Expected 3 atoms, got %d", len(ats))
	}
	for i, a := range ats {
		want := &Atom{Name: "OW", ID: i + 1, Type: "OW", Molname: "SOL", MolID: i + 1, SegID: "W", Mass: 15.999}
		if diff := cmp.Diff(want, a); diff != "" {
			Te.Errorf("atom %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

const twoTemplates = `[ moleculetype ]
Protein_A 3
[ atoms ]
1 CT 5 ALA CA 1  0.5 12.0
2 CT 5 ALA CB 1 -0.5 12.0
3 N  6 GLY N  2  0.0 14.0
[ bonds ]
1 2
[ constraints ]
2 3 1
[ angles ]
1 2 3
[ dihedrals ]
1 2 3 1 1
1 2 3 1 2
3 2 1 3 4
1 2 3 1 9
[ moleculetype ]
ion 1
[ atoms ]
1 NA 1 NA NA 1 1.0 23.0
[ molecules ]
Protein_A 2
ion 2
`

func TestBuildCopies(Te *testing.T) {
	t := readTop(Te, twoTemplates, nil)
	n, err := Count(t)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(Totals{Atoms: 8, Bonds: 4, Angles: 2, Dihedrals: 4, Impropers: 4}, n); diff != "" {
		Te.Errorf("Totals mismatch (-want +got):\n%s", diff)
	}
	ats, err := BuildAtoms(t)
	if err != nil {
		Te.Fatal(err)
	}
	var resids []int
	var segs []string
	for _, a := range ats {
		resids = append(resids, a.MolID)
		segs = append(segs, a.SegID)
	}
	if diff := cmp.Diff([]int{1, 1, 2, 3, 3, 4, 5, 6}, resids); diff != "" {
		Te.Errorf("residue numbers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"PROT", "PROT", "PROT", "PROT", "PROT", "PROT", "ION", "ION"}, segs); diff != "" {
		Te.Errorf("segment names mismatch (-want +got):\n%s", diff)
	}
	//copy k of a 3-atom molecule occupies positions 3(k-1)+1 to 3k
	if ats[3].Name != "CA" || ats[3].ID != 4 || ats[6].Name != "NA" {
		Te.Errorf("atoms out of order: %v %v", ats[3], ats[6])
	}
	bonds, err := BuildBonds(t)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]Bond{{1, 2}, {2, 3}, {4, 5}, {5, 6}}, bonds); diff != "" {
		Te.Errorf("bonds mismatch (-want +got):\n%s", diff)
	}
	angles, err := BuildAngles(t)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]Angle{{1, 2, 3}, {4, 5, 6}}, angles); diff != "" {
		Te.Errorf("angles mismatch (-want +got):\n%s", diff)
	}
	propers, impropers, err := BuildDihedrals(t)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]Dihedral{{1, 2, 3, 1}, {1, 2, 3, 1}, {4, 5, 6, 4}, {4, 5, 6, 4}}, propers); diff != "" {
		Te.Errorf("proper dihedrals mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Dihedral{{1, 2, 3, 1}, {3, 2, 1, 3}, {4, 5, 6, 4}, {6, 5, 4, 6}}, impropers); diff != "" {
		Te.Errorf("improper dihedrals mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTwoAtomBonds(Te *testing.T) {
	t := readTop(Te, "[ moleculetype ]\nD2 1\n[ atoms ]\n1 C 1 D C1 1 0 12\n2 C 1 D C2 1 0 12\n[ bonds ]\n1 2\n[ molecules ]\nD2 2\n", nil)
	bonds, err := BuildBonds(t)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]Bond{{1, 2}, {3, 4}}, bonds); diff != "" {
		Te.Errorf("bonds mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMalformedAtomLine(Te *testing.T) {
	t := readTop(Te, "[ moleculetype ]\nM 1\n[ atoms ]\n1 C 1 R C1 1 0.0 12\n2 C 1 R C2\n3 C 1 R C3 1 0.0 12\n[ molecules ]\nM 1\n", nil)
	ats, err := BuildAtoms(t)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ats) != 2 || ats[0].Name != "C1" || ats[1].Name != "C3" {
		Te.Errorf("the malformed line should be skipped and its neighbours kept: %v", ats)
	}
}

func TestBuildEmptyTemplateResidues(Te *testing.T) {
	t := readTop(Te, "[ moleculetype ]\nEMPTY 1\n[ moleculetype ]\nW 1\n[ atoms ]\n1 OW 7 SOL OW 1 0.0\n[ molecules ]\nEMPTY 2\nW 1\n", nil)
	ats, err := BuildAtoms(t)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ats) != 1 || ats[0].MolID != 3 {
		Te.Errorf("each copy of an empty molecule type should take one residue: %v", ats)
	}
}

func TestBuildMassFallback(Te *testing.T) {
	content := "[ atomtypes ]\nC 12.011\n[ moleculetype ]\nM 1\n[ atoms ]\n1 C 1 R C1 1 0.0\n2 C 1 R C2 1 0.0 13.0\n3 X 1 R X1 1 0.0\n[ molecules ]\nM 1\n"
	S, err := Build(readTop(Te, content, nil))
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]float64{12.011, 13.0, 0}, S.Masses()); diff != "" {
		Te.Errorf("masses mismatch (-want +got):\n%s", diff)
	}
	if _, err := S.MassCol(); err == nil {
		Te.Error("MassCol should fail with a zero mass")
	}
}

func TestBuildUnknownTemplate(Te *testing.T) {
	t := readTop(Te, waterTop+"GHOST 1\n", nil)
	if _, err := Count(t); !errors.Is(err, ErrUnknownTemplate) {
		Te.Errorf("Count: got error %v, want %v", err, ErrUnknownTemplate)
	}
	if _, err := BuildAtoms(t); !errors.Is(err, ErrUnknownTemplate) {
		Te.Errorf("BuildAtoms: got error %v, want %v", err, ErrUnknownTemplate)
	}
	if _, _, err := BuildDihedrals(t); !errors.Is(err, ErrUnknownTemplate) {
		Te.Errorf("BuildDihedrals: got error %v, want %v", err, ErrUnknownTemplate)
	}
}

func TestBuildStrict(Te *testing.T) {
	content := "[ moleculetype ]\nB 1\n[ atoms ]\n1 C 1 R C1 1 0 12\n2 C 1 R C2 1 0 12\n[ bonds ]\n1 5\n[ molecules ]\nB 2\n"
	bonds, err := BuildBonds(readTop(Te, content, nil))
	if err != nil {
		Te.Fatalf("out of range indexes should pass by default: %v", err)
	}
	if diff := cmp.Diff([]Bond{{1, 5}, {3, 7}}, bonds); diff != "" {
		Te.Errorf("bonds mismatch (-want +got):\n%s", diff)
	}
	O := quietOptions()
	O.Strict = true
	_, err = BuildBonds(readTop(Te, content, O))
	if !errors.Is(err, top.ErrIndexOutOfRange) {
		Te.Errorf("got error %v, want %v", err, top.ErrIndexOutOfRange)
	}
}

func TestSegID(Te *testing.T) {
	for in, want := range map[string]string{"Protein_chain_A": "PROT", "sol": "SOL", "W": "W", "Na+": "NA+"} {
		if got := segID(in); got != want {
			Te.Errorf("segID(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestGuessMasses(Te *testing.T) {
	S := &System{Atoms: []*Atom{
		{Name: "CA", Molname: "ALA"},
		{Name: "CA", Molname: "CA"},
		{Name: "CL", Molname: "CL"},
		{Name: "1HB", Molname: "ALA"},
		{Name: "OW", Molname: "SOL", Mass: 16.5},
		{Name: "Q5", Molname: "CG"},
	}}
	if n := S.GuessMasses(); n != 1 {
		Te.Errorf("Expected 1 atom without mass, got %d", n)
	}
	if diff := cmp.Diff([]float64{12.01, 40.08, 35.45, 1.0, 16.5, 0}, S.Masses()); diff != "" {
		Te.Errorf("masses mismatch (-want +got):\n%s", diff)
	}
}
