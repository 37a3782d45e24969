package generate

import (
	"archive/tar"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"

	"github.com/philipparndt/boxgen/internal/box"
	"github.com/philipparndt/boxgen/pkg/analysis"
	"github.com/philipparndt/boxgen/pkg/stl"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	g := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.OutputDir = filepath.Join(t.TempDir(), "archive")
	// Small boxes render fast even at modest resolution.
	g.MeshCells = 64
	return g
}

func smallParams() box.Params {
	return box.Params{
		Length:    10,
		Width:     8,
		Height:    5,
		Thickness: box.DefaultThickness,
		Overlap:   box.DefaultOverlap,
		LidHeight: box.DefaultLidHeight,
	}
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, d.Name())
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(names)
	return names
}

func TestRunProducesOutputs(t *testing.T) {
	g := testGenerator(t)
	p := smallParams()

	if err := g.Run(p); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{
		"README.txt",
		"box_10x8x5.tar.gz",
		"box_base_10x8x5.stl",
		"box_lid_10x8x5.stl",
	}
	if diff := cmp.Diff(want, dirEntries(t, g.OutputDir)); diff != "" {
		t.Errorf("output directory mismatch (-want +got):\n%s", diff)
	}
}

func TestRunArchiveContents(t *testing.T) {
	g := testGenerator(t)
	p := smallParams()

	if err := g.Run(p); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	f, err := os.Open(filepath.Join(g.OutputDir, p.ArchiveFileName()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("open gzip: %v", err)
	}
	tr := tar.NewReader(gz)

	var entries []string
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read tar: %v", err)
		}
		entries = append(entries, header.Name)
	}
	sort.Strings(entries)

	want := []string{"README.txt", "box_base_10x8x5.stl", "box_lid_10x8x5.stl"}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("archive entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMeshEnvelopes(t *testing.T) {
	g := testGenerator(t)
	p := smallParams()

	if err := g.Run(p); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Envelope arithmetic: base (L+2T, W+2T, H+T), lid (L+2T+2O, W+2T+2O, LH).
	checks := []struct {
		file    string
		x, y, z float64
	}{
		{p.BaseFileName(), 14, 12, 7},
		{p.LidFileName(), 18, 16, 5},
	}

	for _, c := range checks {
		mesh, err := stl.ParseFile(filepath.Join(g.OutputDir, c.file))
		if err != nil {
			t.Fatalf("parse %s: %v", c.file, err)
		}
		dims := analysis.Measure(mesh).Dimensions

		const tol = 0.5
		if abs(dims.X-c.x) > tol || abs(dims.Y-c.y) > tol || abs(dims.Z-c.z) > tol {
			t.Errorf("%s: measured %v x %v x %v, want %v x %v x %v",
				c.file, dims.X, dims.Y, dims.Z, c.x, c.y, c.z)
		}
	}
}

func TestRunManifestIdempotent(t *testing.T) {
	g := testGenerator(t)
	p := smallParams()

	if err := g.Run(p); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(g.OutputDir, "README.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if err := g.Run(p); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(g.OutputDir, "README.txt"))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("manifest not idempotent:\n%s", diff)
	}
}

func TestRunCreatesOutputDir(t *testing.T) {
	g := testGenerator(t)

	if _, err := os.Stat(g.OutputDir); !os.IsNotExist(err) {
		t.Fatalf("output dir should not exist before the run")
	}
	if err := g.Run(smallParams()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(g.OutputDir); err != nil {
		t.Errorf("output dir missing after run: %v", err)
	}
}

func TestRunDegenerateParams(t *testing.T) {
	g := testGenerator(t)

	if err := g.Run(box.Params{}); err == nil {
		t.Error("expected error for zero-size box")
	}
	if entries := dirEntries(t, filepath.Dir(g.OutputDir)); len(entries) != 0 {
		t.Errorf("failed run left outputs behind: %v", entries)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
