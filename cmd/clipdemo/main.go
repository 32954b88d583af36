// Command clipdemo loads a YAML scene of clipped elements and prints the
// mask bounds clipmask computes for them.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/clipmask"
	"github.com/gogpu/clipmask/gpucache"
	"github.com/gogpu/clipmask/resource"
)

//go:embed scene.yaml
var defaultScene []byte

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (default: built-in scene)")
		frames    = flag.Int("frames", 1, "number of frames to refresh")
		verbose   = flag.Bool("v", false, "enable debug logging")
		compile   = flag.Bool("shader", false, "compile the clip mask shader")
	)
	flag.Parse()

	data := defaultScene
	if *scenePath != "" {
		var err error
		if data, err = os.ReadFile(*scenePath); err != nil {
			log.Fatalf("Failed to read scene: %v", err)
		}
	}

	scene, err := ParseScene(data)
	if err != nil {
		log.Fatal(err)
	}

	if *verbose {
		clipmask.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(os.Stdout, scene, *frames); err != nil {
		log.Fatal(err)
	}

	if *compile {
		words, err := clipmask.CompileMaskShader()
		if err != nil {
			log.Fatalf("Failed to compile shader: %v", err)
		}
		log.Printf("Clip mask shader: %d SPIR-V words\n", len(words))
	}
}

// run builds every clip node of scene, refreshes them for the given number
// of frames and writes the resulting bounds to w.
func run(w io.Writer, scene *Scene, frames int) error {
	images := resource.New()
	for _, img := range scene.Images {
		if err := images.AddImage(resource.ImageKey{ID: img.ID}, circleMask(img.Width, img.Height)); err != nil {
			return err
		}
	}

	store := clipmask.NewClipStore()
	handles := make([]clipmask.ClipSourcesHandle, len(scene.Clips))
	for i, node := range scene.Clips {
		sources, err := node.Sources()
		if err != nil {
			return err
		}
		handles[i] = store.Insert(clipmask.NewClipSources(sources))
	}

	gpu := gpucache.New()
	transform := scene.Transform.Matrix()

	for frame := 0; frame < max(frames, 1); frame++ {
		gpu.BeginFrame()
		images.BeginFrame()
		for _, h := range handles {
			store.Refresh(h.Weak(), transform, scene.DevicePixelRatio, gpu, images)
		}
		stats := gpu.EndFrame()
		if err := images.EndFrame(); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		clipmask.Logger().Debug("frame done", "frame", frame, "gpuBlocks", stats.Blocks, "allocated", stats.Allocated)
	}

	for i, h := range handles {
		cs := store.Get(h)
		fmt.Fprintf(w, "%s: %d sources, masking=%v\n", scene.Clips[i].Name, cs.Len(), cs.IsMasking())
		b := cs.Bounds()
		fmt.Fprintf(w, "  outer: %s\n", formatGeometry(b.Outer))
		fmt.Fprintf(w, "  inner: %s\n", formatGeometry(b.Inner))
	}
	return nil
}

func formatGeometry(g *clipmask.Geometry) string {
	if g == nil {
		return "unbounded"
	}
	r := g.LocalRect
	return fmt.Sprintf("local (%g,%g %gx%g) device %v", r.X, r.Y, r.W, r.H, g.DeviceRect)
}
