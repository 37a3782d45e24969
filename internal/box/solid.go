package box

import (
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3"
)

// BaseSolid constructs the box base: an outer shell with the interior
// cavity subtracted, open at the top.
func BaseSolid(p Params) (sdf.SDF3, error) {
	outer, err := form3.Box(p.BaseEnvelope(), 0)
	if err != nil {
		return nil, fmt.Errorf("base shell: %w", err)
	}
	cavity, err := form3.Box(p.BaseCavity(), 0)
	if err != nil {
		return nil, fmt.Errorf("base cavity: %w", err)
	}
	cavity = sdf.Transform3D(cavity, sdf.Translate3D(p.BaseCavityOffset()))
	return sdf.Difference3D(outer, cavity), nil
}

// LidSolid constructs the lid: a solid top plate with a skirt that
// slides over the base's outer walls.
func LidSolid(p Params) (sdf.SDF3, error) {
	outer, err := form3.Box(p.LidEnvelope(), 0)
	if err != nil {
		return nil, fmt.Errorf("lid shell: %w", err)
	}
	cavity, err := form3.Box(p.LidCavity(), 0)
	if err != nil {
		return nil, fmt.Errorf("lid cavity: %w", err)
	}
	cavity = sdf.Transform3D(cavity, sdf.Translate3D(p.LidCavityOffset()))
	return sdf.Difference3D(outer, cavity), nil
}
