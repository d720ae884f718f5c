// Command zigzag is an example consumer of the ribbon mesh: it loads a scene
// (a path, a width, and a closed flag) from a YAML file, builds the ribbon,
// and exports the result as a Wavefront OBJ plus a top-down PNG plot.
//
// Without -scene it runs a built-in zig-zag path.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"
	"gopkg.in/yaml.v3"

	ribbon "github.com/bjnortier/ribbon-3d"
)

// Scene is the YAML scene file: a list of [x, y] or [x, y, z] points, the
// ribbon width, and whether the path is a logical loop.
type Scene struct {
	Path   [][]float64 `yaml:"path"`
	Width  float64     `yaml:"width"`
	Closed bool        `yaml:"closed"`
}

func defaultScene() Scene {
	return Scene{
		Path: [][]float64{
			{0, 0}, {10, 0}, {10, 10}, {20, 10}, {20, 0}, {30, 0}, {30, 15},
		},
		Width: 1.5,
	}
}

func loadScene(file string) (Scene, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Scene{}, err
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parse %s: %w", file, err)
	}
	return s, nil
}

func (s Scene) points() ([]mgl64.Vec3, error) {
	points := make([]mgl64.Vec3, len(s.Path))
	for i, pt := range s.Path {
		switch len(pt) {
		case 2:
			points[i] = mgl64.Vec3{pt[0], pt[1], 0}
		case 3:
			points[i] = mgl64.Vec3{pt[0], pt[1], pt[2]}
		default:
			return nil, fmt.Errorf("point %d has %d coordinates, expected 2 or 3", i, len(pt))
		}
	}
	return points, nil
}

func main() {
	sceneFile := flag.String("scene", "", "YAML scene file (default: built-in zig-zag)")
	objFile := flag.String("obj", "ribbon.obj", "Wavefront OBJ output file")
	pngFile := flag.String("png", "ribbon.png", "PNG plot output file")
	size := flag.Int("size", 800, "PNG image size in pixels")
	flag.Parse()

	scene := defaultScene()
	if *sceneFile != "" {
		var err error
		scene, err = loadScene(*sceneFile)
		if err != nil {
			log.Fatalf("load scene: %v", err)
		}
	}

	points, err := scene.points()
	if err != nil {
		log.Fatalf("bad scene: %v", err)
	}

	mesh, err := ribbon.Build(points, ribbon.Options{Width: scene.Width, Closed: scene.Closed})
	if err != nil {
		log.Fatalf("build ribbon: %v", err)
	}
	fmt.Printf("built ribbon: %d triangles, %d outline points\n", len(mesh.Triangles), len(mesh.Outline))

	if err := writeOBJ(mesh, *objFile); err != nil {
		log.Fatalf("write OBJ: %v", err)
	}
	fmt.Printf("wrote %s\n", *objFile)

	if err := writePNG(mesh, *size, *pngFile); err != nil {
		log.Fatalf("write PNG: %v", err)
	}
	fmt.Printf("wrote %s\n", *pngFile)
}

// writeOBJ exports the triangles as faces and the outline pairs as line
// elements. Vertices are not deduplicated, matching the mesh itself.
func writeOBJ(mesh ribbon.Mesh, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "o ribbon")

	index := 1
	for _, tri := range mesh.Triangles {
		for _, p := range tri {
			fmt.Fprintf(w, "v %g %g %g\n", p.X(), p.Y(), p.Z())
		}
		fmt.Fprintf(w, "f %d %d %d\n", index, index+1, index+2)
		index += 3
	}
	for k := 0; k+1 < len(mesh.Outline); k += 2 {
		a, b := mesh.Outline[k], mesh.Outline[k+1]
		fmt.Fprintf(w, "v %g %g %g\n", a.X(), a.Y(), a.Z())
		fmt.Fprintf(w, "v %g %g %g\n", b.X(), b.Y(), b.Z())
		fmt.Fprintf(w, "l %d %d\n", index, index+1)
		index += 2
	}
	return w.Flush()
}

// writePNG rasterizes a top-down view: filled triangles with the border
// outline drawn on top.
func writePNG(mesh ribbon.Mesh, size int, file string) error {
	toPixel := pixelMapper(mesh, size)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	fill := vector.NewRasterizer(size, size)
	for _, tri := range mesh.Triangles {
		ax, ay := toPixel(tri[0])
		bx, by := toPixel(tri[1])
		cx, cy := toPixel(tri[2])
		fill.MoveTo(ax, ay)
		fill.LineTo(bx, by)
		fill.LineTo(cx, cy)
		fill.ClosePath()
	}
	fill.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 0x7f, G: 0xb2, B: 0xe5, A: 0xff}), image.Point{})

	border := vector.NewRasterizer(size, size)
	for k := 0; k+1 < len(mesh.Outline); k += 2 {
		ax, ay := toPixel(mesh.Outline[k])
		bx, by := toPixel(mesh.Outline[k+1])
		strokeLine(border, ax, ay, bx, by, 1)
	}
	border.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 0x1f, G: 0x3a, B: 0x5f, A: 0xff}), image.Point{})

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// pixelMapper fits the mesh bounding box into a size×size image with a
// margin, Y up in world space mapped to Y down in image space.
func pixelMapper(mesh ribbon.Mesh, size int) func(mgl64.Vec3) (float32, float32) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, tri := range mesh.Triangles {
		for _, p := range tri {
			minX = math.Min(minX, p.X())
			minY = math.Min(minY, p.Y())
			maxX = math.Max(maxX, p.X())
			maxY = math.Max(maxY, p.Y())
		}
	}

	margin := 0.05 * float64(size)
	span := math.Max(maxX-minX, maxY-minY)
	if span <= 0 {
		span = 1
	}
	scale := (float64(size) - 2*margin) / span

	return func(p mgl64.Vec3) (float32, float32) {
		x := margin + (p.X()-minX)*scale
		y := float64(size) - margin - (p.Y()-minY)*scale
		return float32(x), float32(y)
	}
}

// strokeLine adds a thin quad covering the segment (ax,ay)-(bx,by).
func strokeLine(r *vector.Rasterizer, ax, ay, bx, by, halfWidth float32) {
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx := -dy / length * halfWidth
	ny := dx / length * halfWidth
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}
