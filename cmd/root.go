// Package cmd holds the command line entry points shared by the meshpick frontends.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/philipparndt/meshpick/internal/config"
	"github.com/philipparndt/meshpick/pkg/mesh"
	"github.com/philipparndt/meshpick/version"
)

// RunFunc starts a frontend for a loaded mesh and blocks until its window is closed
type RunFunc func(m *mesh.Mesh, settings config.Settings) error

// NewRootCommand builds a command that loads the optional mesh argument and hands it to run
func NewRootCommand(use string, run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [mesh.obj]",
		Short: "Interactive 3D mesh vertex picker",
		Long: `Loads a Wavefront OBJ mesh, renders it with a marker at every vertex
and shows the id and coordinates of the vertex you click in select mode.

Without an argument the bundled cube is shown.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			m, err := LoadMesh(path)
			if err != nil {
				return err
			}
			slog.Info("Loaded mesh",
				"name", m.Name,
				"vertices", humanize.Comma(int64(m.VertexCount())),
				"faces", humanize.Comma(int64(m.FaceCount())),
			)

			return run(m, settings)
		},
	}
}

// loadSettings reads the environment overrides and configures the default logger
func loadSettings() config.Settings {
	settings, warnings := config.FromEnv(os.LookupEnv)
	slog.SetLogLoggerLevel(settings.LogLevel)
	for _, w := range warnings {
		slog.Warn("Ignoring invalid setting", "error", w)
	}
	return settings
}

// Execute runs c and exits with status 1 when it fails
func Execute(c *cobra.Command) {
	if err := c.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
