// Command sphereray builds a spherical voxel grid and walks a single
// ray through it, printing the emitted voxel sequence. It follows the
// teacher's main.go convention of a flag-driven banner-then-report
// CLI rather than a subcommand framework.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"sphervoxel/config"
	"sphervoxel/geom"
	"sphervoxel/gridspec"
	"sphervoxel/trace"
)

func main() {
	var (
		settingsPath = flag.String("settings", "settings.json", "Path to a settings JSON file")
		radial       = flag.Int("radial", 0, "Radial shell count (0 = use settings)")
		polar        = flag.Int("polar", 0, "Polar wedge count (0 = use settings)")
		azimuthal    = flag.Int("azimuthal", 0, "Azimuthal wedge count (0 = use settings)")
		rMin         = flag.Float64("rmin", -1, "Grid minimum radius (negative = use settings)")
		rMax         = flag.Float64("rmax", -1, "Grid maximum radius (negative = use settings)")
		ox, oy, oz   = flag.Float64("ox", 0, "Ray origin X"), flag.Float64("oy", 0, "Ray origin Y"), flag.Float64("oz", -5, "Ray origin Z")
		dx, dy, dz   = flag.Float64("dx", 0, "Ray direction X"), flag.Float64("dy", 0, "Ray direction Y"), flag.Float64("dz", 1, "Ray direction Z")
		tMax         = flag.Float64("tmax", 100, "Maximum ray parameter")
		asJSON       = flag.Bool("json", false, "Print the sequence as JSON instead of a table")
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
	if *rMin < 0 {
		*rMin = settings.Grid.RadiusMin
	}
	if *rMax < 0 {
		*rMax = settings.Grid.RadiusMax
	}

	fmt.Println("=== Spherical Volume Ray Traversal ===")
	fmt.Printf("Grid: r=[%.3f, %.3f], shells=%d, polar=%d, azimuthal=%d\n",
		*rMin, *rMax, *radial, *polar, *azimuthal)

	grid, err := gridspec.NewGrid(geom.New(0, 0, 0), gridspec.FullSphere(*rMin, *rMax), *radial, *polar, *azimuthal)
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

	if len(seq) == 0 {
		fmt.Println("No intersection.")
		return
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(seq); err != nil {
			log.Fatalf("failed to encode sequence: %v", err)
		}
		return
	}

	fmt.Printf("%-4s %-4s %-4s %-4s %12s %12s\n", "#", "ir", "ip", "ia", "t_enter", "t_exit")
	for i, rec := range seq {
		fmt.Printf("%-4d %-4d %-4d %-4d %12.6f %12.6f\n",
			i, rec.Voxel.IR, rec.Voxel.IP, rec.Voxel.IA, rec.TEnter, rec.TExit)
	}
	fmt.Printf("%d records\n", len(seq))
}
