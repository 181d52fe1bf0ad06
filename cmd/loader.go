package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/philipparndt/meshpick/assets"
	"github.com/philipparndt/meshpick/pkg/mesh"
)

// LoadMesh loads the mesh named on the command line, or the bundled sample
// when path is empty
func LoadMesh(path string) (*mesh.Mesh, error) {
	if path == "" {
		fmt.Printf("No mesh given, using bundled %s\n", assets.SampleName)
		return assets.SampleMesh()
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".obj" {
		slog.Warn("Unexpected file extension, parsing as OBJ", "path", path, "ext", ext)
	}

	fmt.Printf("Loading mesh: %s\n", path)
	m, err := mesh.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}
	return m, nil
}
