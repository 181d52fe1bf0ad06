// Package assets bundles the sample mesh shown when no file is given.
package assets

import (
	"bytes"
	_ "embed"

	"github.com/philipparndt/meshpick/pkg/mesh"
)

// SampleName is the name reported for the bundled mesh
const SampleName = "cube.obj"

//go:embed cube.obj
var SampleOBJ []byte

// SampleMesh parses the bundled cube
func SampleMesh() (*mesh.Mesh, error) {
	return mesh.Parse(SampleName, bytes.NewReader(SampleOBJ))
}
