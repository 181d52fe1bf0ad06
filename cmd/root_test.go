package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/meshpick/internal/config"
	"github.com/philipparndt/meshpick/pkg/mesh"
)

func TestLoadMeshDefaultsToSample(t *testing.T) {
	m, err := LoadMesh("")
	require.NoError(t, err)
	assert.Equal(t, "cube.obj", m.Name)
	assert.Equal(t, 8, m.VertexCount())
}

func TestLoadMeshMissingFile(t *testing.T) {
	_, err := LoadMesh(filepath.Join(t.TempDir(), "missing.obj"))
	require.Error(t, err)

	var loadErr *mesh.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestRootCommandRunsWithLoadedMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))

	var got *mesh.Mesh
	c := NewRootCommand("meshpick", func(m *mesh.Mesh, _ config.Settings) error {
		got = m
		return nil
	})
	c.SetArgs([]string{path})

	require.NoError(t, c.Execute())
	require.NotNil(t, got)
	assert.Equal(t, "tri.obj", got.Name)
	assert.Equal(t, 3, got.VertexCount())
}

func TestRootCommandLoadFailureSkipsRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0\n"), 0o644))

	called := false
	c := NewRootCommand("meshpick", func(*mesh.Mesh, config.Settings) error {
		called = true
		return nil
	})
	c.SetArgs([]string{path})

	err := c.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrMalformedRecord)
	assert.False(t, called)
}

func TestRootCommandRejectsExtraArgs(t *testing.T) {
	c := NewRootCommand("meshpick", func(*mesh.Mesh, config.Settings) error { return nil })
	c.SetArgs([]string{"a.obj", "b.obj"})
	assert.Error(t, c.Execute())
}
