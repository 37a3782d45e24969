// Package box derives the solid geometry of a parametric storage box
// with a friction-fit lid from its interior dimensions.
package box

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// Defaults for the shell parameters, in model units (millimeters).
const (
	DefaultThickness = 2.0
	DefaultOverlap   = 2.0
	DefaultLidHeight = 5.0
)

// SnugClearance is added to the lid cavity's horizontal dimensions so the
// lid slides over the base's outer walls instead of binding on them.
const SnugClearance = 0.15

// Params holds the user-supplied interior dimensions and shell parameters.
type Params struct {
	Length    float64 // interior length (X)
	Width     float64 // interior width (Y)
	Height    float64 // interior height (Z)
	Thickness float64 // wall thickness
	Overlap   float64 // horizontal margin of the lid skirt past the base walls
	LidHeight float64 // total lid height
}

// BaseEnvelope returns the outer dimensions of the box base: the interior
// grows by one wall on each side horizontally and by the floor vertically.
func (p Params) BaseEnvelope() r3.Vec {
	return r3.Vec{
		X: p.Length + 2*p.Thickness,
		Y: p.Width + 2*p.Thickness,
		Z: p.Height + p.Thickness,
	}
}

// BaseCavity returns the dimensions of the interior cavity of the base.
func (p Params) BaseCavity() r3.Vec {
	return r3.Vec{X: p.Length, Y: p.Width, Z: p.Height}
}

// BaseCavityOffset returns the cavity translation relative to the centered
// outer shell. The cavity is centered in X and Y and raised by half the
// wall thickness, leaving a floor of full thickness and an open top.
func (p Params) BaseCavityOffset() r3.Vec {
	return r3.Vec{Z: p.Thickness / 2}
}

// LidEnvelope returns the outer dimensions of the lid: the base envelope
// plus the overlap margin on each side, at the configured lid height.
func (p Params) LidEnvelope() r3.Vec {
	base := p.BaseEnvelope()
	return r3.Vec{
		X: base.X + 2*p.Overlap,
		Y: base.Y + 2*p.Overlap,
		Z: p.LidHeight,
	}
}

// LidCavity returns the dimensions of the lid's interior cavity, sized to
// the base's outer envelope plus the snug-fit clearance. This sizing is
// the load-bearing relationship of the whole model: if the cavity were
// smaller than the base envelope the lid would not fit over the base.
func (p Params) LidCavity() r3.Vec {
	base := p.BaseEnvelope()
	return r3.Vec{
		X: base.X + SnugClearance,
		Y: base.Y + SnugClearance,
		Z: p.LidHeight - p.Thickness/2,
	}
}

// LidCavityOffset returns the lid cavity translation relative to the
// centered outer shell, centered in X and Y and raised by half the wall
// thickness so the lid keeps a solid top plate.
func (p Params) LidCavityOffset() r3.Vec {
	return r3.Vec{Z: p.Thickness / 2}
}

// FormatDim renders a dimension value the way it appears in filenames and
// the manifest: shortest decimal form, no padding or unit suffix.
func FormatDim(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// dimsSuffix is the "{L}x{W}x{H}" tag shared by all output names.
func (p Params) dimsSuffix() string {
	return fmt.Sprintf("%sx%sx%s", FormatDim(p.Length), FormatDim(p.Width), FormatDim(p.Height))
}

// BaseFileName returns the STL file name of the box base.
func (p Params) BaseFileName() string {
	return fmt.Sprintf("box_base_%s.stl", p.dimsSuffix())
}

// LidFileName returns the STL file name of the box lid.
func (p Params) LidFileName() string {
	return fmt.Sprintf("box_lid_%s.stl", p.dimsSuffix())
}

// ArchiveFileName returns the name of the bundled tar.gz archive.
func (p Params) ArchiveFileName() string {
	return fmt.Sprintf("box_%s.tar.gz", p.dimsSuffix())
}
