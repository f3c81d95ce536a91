// Command glint renders built-in scenes to image files and serves the
// interactive web renderer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/glintrt/glint/pkg/loaders"
	"github.com/glintrt/glint/pkg/record"
	"github.com/glintrt/glint/pkg/renderer"
	"github.com/glintrt/glint/pkg/scene"
	"github.com/glintrt/glint/web/server"
)

func main() {
	root := &cobra.Command{
		Use:           "glint",
		Short:         "A recursive ray tracer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newServeCmd(), newScenesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRenderCmd() *cobra.Command {
	var (
		sceneName string
		width     int
		height    int
		maxDepth  int
		workers   int
		output    string
		objFile   string
		recordDir string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := buildScene(sceneName, width, height, objFile)
			if err != nil {
				return err
			}

			opts := renderer.DefaultOptions()
			opts.MaxDepth = maxDepth
			opts.NumWorkers = workers
			rend := renderer.New(sc.Camera, sc.World, opts, renderer.NewDefaultLogger())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			var onTile renderer.ProgressFunc
			var session *record.Session
			if recordDir != "" {
				session, _, err = record.NewSession(recordDir, sceneName, width, height, time.Now)
				if err != nil {
					return err
				}
				defer session.Close()
				onTile = session.RecordTile
			}

			img, stats, err := rend.RenderProgressive(ctx, onTile)
			if err != nil {
				return err
			}
			if session != nil {
				if err := session.RecordFrame(img); err != nil {
					return err
				}
				fmt.Printf("Recorded session to %s\n", session.Directory())
			}

			format := strings.TrimPrefix(filepath.Ext(output), ".")
			if format == "" {
				format = "png"
			}
			file, err := os.Create(output)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := img.Encode(file, format); err != nil {
				return err
			}

			fmt.Printf("Wrote %s (%d pixels, %d tiles, %v)\n",
				output, stats.TotalPixels, stats.TotalTiles, stats.Elapsed)
			return nil
		},
	}

	cmd.Flags().StringVar(&sceneName, "scene", "default", "scene name (see 'glint scenes')")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "image height in pixels")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 5, "reflection/refraction recursion bound")
	cmd.Flags().IntVar(&workers, "workers", 0, "render workers (0 = all CPUs)")
	cmd.Flags().StringVarP(&output, "output", "o", "render.png", "output file (.png, .ppm or .tiff)")
	cmd.Flags().StringVar(&objFile, "obj", "", "OBJ mesh to add to the scene")
	cmd.Flags().StringVar(&recordDir, "record", "", "directory to record the render session into")
	return cmd
}

// buildScene constructs a named scene and folds an optional OBJ mesh into
// it. The scene is re-validated after the mesh is added so loaded geometry
// passes the same freeze step as built-in objects.
func buildScene(sceneName string, width, height int, objFile string) (*scene.Scene, error) {
	sc, err := scene.Build(sceneName, width, height)
	if err != nil {
		return nil, err
	}

	if objFile != "" {
		mesh, err := loaders.LoadOBJ(objFile)
		if err != nil {
			return nil, err
		}
		sc.World.Objects = append(sc.World.Objects, mesh.ToGroup())
		if err := sc.Validate(); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func newServeCmd() *cobra.Command {
	var (
		port      int
		staticDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive web renderer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.NewServer(port, staticDir).Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().StringVar(&staticDir, "static", "web/static", "static asset directory")
	return cmd
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scene.List() {
				sc, err := scene.Build(name, 100, 100)
				if err != nil {
					return err
				}
				fmt.Printf("%-12s %s\n", name, sc.Description)
			}
			return nil
		},
	}
}
