package main

import (
	"github.com/philipparndt/meshpick/cmd"
	"github.com/philipparndt/meshpick/internal/app"
	"github.com/philipparndt/meshpick/internal/config"
	"github.com/philipparndt/meshpick/pkg/mesh"
)

func main() {
	cmd.Execute(cmd.NewRootCommand("meshpick", func(m *mesh.Mesh, settings config.Settings) error {
		app.New(m, settings).Run()
		return nil
	}))
}
