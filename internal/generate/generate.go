// Package generate drives a single box-and-lid generation run: solid
// construction, mesh export, manifest, archive, and output relocation.
package generate

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/boxgen/internal/archive"
	"github.com/philipparndt/boxgen/internal/box"
	"github.com/philipparndt/boxgen/pkg/analysis"
	"github.com/philipparndt/boxgen/pkg/stl"
)

const (
	// DefaultOutputDir is the archive directory relative to the working
	// directory.
	DefaultOutputDir = "archive"

	// DefaultMeshCells is the octree renderer cell count. 200 keeps facet
	// placement well under a tenth of the snug-fit clearance for
	// hand-sized boxes.
	DefaultMeshCells = 200

	// verifyTolerance is the allowed deviation between a re-measured mesh
	// and its computed envelope before a warning is logged.
	verifyTolerance = 1.0
)

// Generator holds the configuration of a generation run. The zero value is
// not usable; construct one with New.
type Generator struct {
	Log       *slog.Logger
	OutputDir string
	MeshCells int
}

// New returns a Generator with default output directory and mesh
// resolution.
func New(log *slog.Logger) *Generator {
	return &Generator{
		Log:       log,
		OutputDir: DefaultOutputDir,
		MeshCells: DefaultMeshCells,
	}
}

// Run generates the base and lid meshes for p, writes the manifest,
// bundles everything into a tar.gz in the output directory and moves the
// three source files there as well.
//
// The scratch directory is removed when Run returns; the move-out happens
// before that, so a successful run leaves nothing behind.
func (g *Generator) Run(p box.Params) error {
	scratch, cleanup, err := newScratchDir()
	if err != nil {
		return fmt.Errorf("create scratch directory: %w", err)
	}
	defer cleanup()

	basePath := filepath.Join(scratch, p.BaseFileName())
	lidPath := filepath.Join(scratch, p.LidFileName())
	manifestPath := filepath.Join(scratch, "README.txt")

	base, err := box.BaseSolid(p)
	if err != nil {
		return fmt.Errorf("construct base: %w", err)
	}
	if err := g.export(basePath, base, p.BaseEnvelope()); err != nil {
		return fmt.Errorf("export base: %w", err)
	}

	lid, err := box.LidSolid(p)
	if err != nil {
		return fmt.Errorf("construct lid: %w", err)
	}
	if err := g.export(lidPath, lid, p.LidEnvelope()); err != nil {
		return fmt.Errorf("export lid: %w", err)
	}

	if err := archive.WriteManifest(manifestPath, p); err != nil {
		return err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	files := []string{basePath, lidPath, manifestPath}
	archivePath := filepath.Join(g.OutputDir, p.ArchiveFileName())
	if err := archive.CreateTarGz(archivePath, files); err != nil {
		return err
	}
	g.Log.Info("created archive", "path", archivePath)

	if err := archive.MoveAll(files, g.OutputDir); err != nil {
		return err
	}

	return nil
}

// export renders the solid to a binary STL file, then re-reads it and
// checks the measured dimensions against the computed envelope.
func (g *Generator) export(path string, s sdf.SDF3, want r3.Vec) error {
	if err := render.CreateSTL(path, render.NewOctreeRenderer(s, g.MeshCells)); err != nil {
		return fmt.Errorf("render mesh: %w", err)
	}

	mesh, err := stl.ParseFile(path)
	if err != nil {
		return fmt.Errorf("verify mesh: %w", err)
	}
	result := analysis.Measure(mesh)

	g.Log.Info("exported mesh",
		"path", path,
		"dimensions", result.FormatDimensions(),
		"triangles", result.TriangleCount)

	got := result.Dimensions
	deviates := math.Abs(got.X-want.X) > verifyTolerance ||
		math.Abs(got.Y-want.Y) > verifyTolerance ||
		math.Abs(got.Z-want.Z) > verifyTolerance
	if deviates {
		g.Log.Warn("mesh dimensions deviate from computed envelope",
			"path", path,
			"measured", result.FormatDimensions(),
			"expected", fmt.Sprintf("%.2f x %.2f x %.2f", want.X, want.Y, want.Z))
	}
	return nil
}
