package generate

import "os"

// newScratchDir creates the per-run scratch directory that holds the mesh
// exports and manifest until they are archived and moved out. The cleanup
// function removes the directory and anything still inside it, so it must
// run only after the move-out has completed.
func newScratchDir() (dir string, cleanup func(), err error) {
	d, err := os.MkdirTemp("", "boxgen-")
	if err != nil {
		return "", nil, err
	}
	return d, func() { _ = os.RemoveAll(d) }, nil
}
