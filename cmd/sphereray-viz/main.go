// Command sphereray-viz opens a raylib window and draws one ray's
// path through a spherical voxel grid: the outer bounding sphere as a
// wireframe, the ray as a line segment, and a marker at each voxel
// boundary crossing. Its flag-then-report CLI scaffolding follows the
// teacher's own main.go; the window and camera loop itself puts
// raylib (a teacher dependency the teacher barely exercises) to real
// use drawing traversal debugging output instead of a planet mesh.
package main

import (
	"flag"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sphervoxel/config"
	"sphervoxel/geom"
	"sphervoxel/gridspec"
	"sphervoxel/trace"
)

func main() {
	var (
		settingsPath  = flag.String("settings", "settings.json", "Path to a settings JSON file")
		radial        = flag.Int("radial", 0, "Radial shell count (0 = use settings)")
		polar         = flag.Int("polar", 0, "Polar wedge count (0 = use settings)")
		azimuthal     = flag.Int("azimuthal", 0, "Azimuthal wedge count (0 = use settings)")
		rMax          = flag.Float64("rmax", -1, "Grid maximum radius (negative = use settings)")
		ox, oy, oz    = flag.Float64("ox", 0, "Ray origin X"), flag.Float64("oy", 0, "Ray origin Y"), flag.Float64("oz", -8, "Ray origin Z")
		dx, dy, dz    = flag.Float64("dx", 0, "Ray direction X"), flag.Float64("dy", 0, "Ray direction Y"), flag.Float64("dz", 1, "Ray direction Z")
		tMax          = flag.Float64("tmax", 100, "Maximum ray parameter")
		width, height = flag.Int("width", 1024, "Window width"), flag.Int("height", 768, "Window height")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	if *radial == 0 {
		*radial = settings.Grid.Radial
	}
	if *polar == 0 {
		*polar = settings.Grid.Polar
	}
	if *azimuthal == 0 {
		*azimuthal = settings.Grid.Azimuthal
	}
	if *rMax < 0 {
		*rMax = settings.Grid.RadiusMax
	}

	grid, err := gridspec.NewGrid(geom.New(0, 0, 0), gridspec.FullSphere(0, *rMax), *radial, *polar, *azimuthal)
	if err != nil {
		log.Fatalf("failed to build grid: %v", err)
	}

	ray, err := geom.NewRay(geom.New(*ox, *oy, *oz), geom.New(*dx, *dy, *dz))
	if err != nil {
		log.Fatalf("invalid ray: %v", err)
	}

	seq, err := trace.Walk(ray, grid, *tMax)
	if err != nil {
		log.Fatalf("traversal failed: %v", err)
	}
	fmt.Printf("Traversal produced %d records\n", len(seq))

	rl.InitWindow(int32(*width), int32(*height), "sphereray-viz")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: float32(*rMax) * 1.5, Z: float32(*rMax) * 4},
		Target:     rl.Vector3{X: 0, Y: 0, Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.BeginMode3D(camera)
		rl.DrawSphereWires(rl.Vector3{}, float32(*rMax), 16, 16, rl.Gray)
		drawPath(ray, seq)
		rl.DrawGrid(10, float32(*rMax)/5)
		rl.EndMode3D()

		rl.DrawText(fmt.Sprintf("%d voxels entered", len(seq)), 10, 10, 20, rl.DarkGray)
		rl.EndDrawing()
	}
}

func drawPath(ray geom.Ray, seq trace.Sequence) {
	for i, rec := range seq {
		start := toVec3(ray.At(rec.TEnter))
		end := toVec3(ray.At(rec.TExit))
		color := rl.Red
		if i%2 == 0 {
			color = rl.Blue
		}
		rl.DrawLine3D(start, end, color)
		rl.DrawSphere(start, 0.03, color)
	}
	if len(seq) > 0 {
		last := seq[len(seq)-1]
		rl.DrawSphere(toVec3(ray.At(last.TExit)), 0.03, rl.Green)
	}
}

func toVec3(v geom.Vector) rl.Vector3 {
	return rl.Vector3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}
