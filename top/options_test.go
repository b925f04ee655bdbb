package top

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "grotop.hcl")
	content := `
defines      = ["FLEXIBLE", "POSRES"]
include_dirs = ["/usr/share/gromacs/top", "ff"]
preload      = ["ff/forcefield.itp"]

max_templates   = 10
max_line_length = -1
strict          = true
`
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	O, err := LoadOptions(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"FLEXIBLE", "POSRES"}, O.Defines); diff != "" {
		t.Errorf("Defines mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/usr/share/gromacs/top", "ff"}, O.IncludeDirs); diff != "" {
		t.Errorf("IncludeDirs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ff/forcefield.itp"}, O.Preload); diff != "" {
		t.Errorf("Preload mismatch (-want +got):\n%s", diff)
	}
	if O.MaxTemplates != 10 || O.MaxLineLength != -1 || !O.Strict {
		t.Errorf("Unexpected options %+v", O)
	}
	if O.MaxIncludeDepth != DefaultMaxIncludeDepth || O.MaxDefines != DefaultMaxDefines {
		t.Errorf("Missing attributes should keep their defaults: %+v", O)
	}
}

func TestLoadOptionsEnv(t *testing.T) {
	t.Setenv("GROTOP_TEST_GMXLIB", "/opt/gromacs/share/top")
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"env.hcl": "include_dirs = [env.GROTOP_TEST_GMXLIB, \"local\"]\n"})
	O, err := LoadOptions(filepath.Join(dir, "env.hcl"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"/opt/gromacs/share/top", "local"}, O.IncludeDirs); diff != "" {
		t.Errorf("IncludeDirs mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	dir := t.TempDir()
	bad := map[string]string{
		"syntax.hcl":  "defines = [\n",
		"unknown.hcl": "no_such_option = 3\n",
		"type.hcl":    "max_templates = \"many\"\n",
	}
	writeFiles(t, dir, bad)
	for name := range bad {
		if _, err := LoadOptions(filepath.Join(dir, name)); err == nil {
			t.Errorf("LoadOptions(%s) should have failed", name)
		}
	}
	if _, err := LoadOptions(filepath.Join(dir, "nothere.hcl")); err == nil {
		t.Error("LoadOptions should fail on a missing file")
	}
}

func TestNewTopologyDefines(t *testing.T) {
	O := quietOptions()
	O.Defines = []string{"A", "B", "A"}
	T := NewTopology(O)
	if diff := cmp.Diff([]string{"A", "B"}, T.Defines.Names()); diff != "" {
		t.Errorf("Defines mismatch (-want +got):\n%s", diff)
	}
	if NewTopology(nil).Options().MaxTemplates != DefaultMaxTemplates {
		t.Error("A nil Options should mean DefaultOptions")
	}
}
