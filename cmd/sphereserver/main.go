// Command sphereserver runs a long-lived process that streams
// spherical volume ray traversals to websocket clients, generalizing
// the teacher's own server.go (which streams planet mesh frames) from
// planet meshes to traversal records.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sphervoxel/config"
	"sphervoxel/geom"
	"sphervoxel/gridspec"
	"sphervoxel/streamserver"
)

func main() {
	settingsPath := flag.String("settings", "settings.json", "Path to a settings JSON file")
	port := flag.Int("port", 0, "Port to listen on (0 = use settings)")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	if *port != 0 {
		settings.Server.Port = *port
	}

	grid, err := gridspec.NewGrid(
		geom.New(0, 0, 0),
		gridspec.FullSphere(settings.Grid.RadiusMin, settings.Grid.RadiusMax),
		settings.Grid.Radial, settings.Grid.Polar, settings.Grid.Azimuthal,
	)
	if err != nil {
		log.Fatalf("failed to build grid: %v", err)
	}

	srv := streamserver.New(grid, settings.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
