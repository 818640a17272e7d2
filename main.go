package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mobile-next/emubridge/cli"
	"github.com/mobile-next/emubridge/commands"
	"github.com/mobile-next/emubridge/core"
	"github.com/mobile-next/emubridge/devices"
	"github.com/mobile-next/emubridge/display"
	"github.com/mobile-next/emubridge/logging"
	"github.com/mobile-next/emubridge/overlay"
	"github.com/mobile-next/emubridge/types"
	"github.com/mobile-next/emubridge/utils"
)

// mainSurface is the surface identifier of the primary display window.
const mainSurface core.SurfaceID = "main"

// overlayContainerSize is the edit container used when no platform view
// reports its own geometry.
var overlayContainerSize = types.Size{Width: 1280, Height: 720}

func main() {
	baseDir, err := os.UserConfigDir()
	if err != nil {
		baseDir = "."
	}
	baseDir = filepath.Join(baseDir, "emubridge")

	sessionLog := logging.NewSessionLogger(baseDir, false)
	sessionLog.Initialize()

	profiles, err := devices.NewIniProfileStore(filepath.Join(baseDir, "controllers.ini"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	registry := devices.NewRegistry(profiles)

	// no native core is linked into the CLI build; every native call
	// degrades to its sentinel
	bridge := core.Unavailable()

	layout := overlay.DefaultLayout(overlayContainerSize)
	container := &overlay.Container{Size: overlayContainerSize}
	containerFn := func() *overlay.Container { return container }

	commands.SetEnv(&commands.Env{
		Bridge:      bridge,
		Registry:    registry,
		Profiles:    profiles,
		Layout:      layout,
		Drag:        overlay.NewDragHandler(layout, containerFn),
		Window:      display.NewWindow(bridge, mainSurface),
		Log:         sessionLog,
		ContainerFn: containerFn,
	})

	// setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// run command in goroutine
	done := make(chan error, 1)
	go func() {
		done <- cli.Execute()
	}()

	// wait for command completion or signal
	select {
	case <-sigChan:
		// let pending persistence finish, then release the log file
		registry.Close()
		sessionLog.Close()
		os.Exit(0)
	case err := <-done:
		registry.Wait()
		sessionLog.Close()
		if err != nil {
			utils.Verbose("command failed: %v", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
