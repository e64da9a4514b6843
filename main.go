package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "settings.yaml", "settings file (YAML, optional)")
	debug := flag.Bool("debug", false, "enable the debug overlay")
	watch := flag.Bool("watch", false, "reload the map files when they change on disk")
	flag.Parse()

	settings, err := LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *watch {
		settings.Watch = true
	}

	game, err := NewGame(settings, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	// Route the close button through the game loop so it stops the running
	// flag instead of killing the window outright.
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("shutdown: %v", cerr)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
