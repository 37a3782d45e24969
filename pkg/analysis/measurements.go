package analysis

import (
	"fmt"

	"github.com/philipparndt/boxgen/pkg/geometry"
	"github.com/philipparndt/boxgen/pkg/stl"
)

// Result summarizes the geometric properties of a mesh
type Result struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	TriangleCount int
	SurfaceArea   float64
}

// Measure computes the summary measurements of a mesh
func Measure(mesh *stl.Mesh) Result {
	bbox := mesh.BoundingBox()
	return Result{
		BoundingBox:   bbox,
		Dimensions:    bbox.Size(),
		TriangleCount: mesh.TriangleCount(),
		SurfaceArea:   mesh.SurfaceArea(),
	}
}

// FormatDimensions renders the overall dimensions as "L x W x H"
func (r Result) FormatDimensions() string {
	return fmt.Sprintf("%.2f x %.2f x %.2f", r.Dimensions.X, r.Dimensions.Y, r.Dimensions.Z)
}
