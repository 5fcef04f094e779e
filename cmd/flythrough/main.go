package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/flythrough"
	"github.com/smasonuk/flythrough/render"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

func main() {
	configFile := flag.String("config", "", "YAML file overriding the default tuning")
	seed := flag.Int64("seed", 0, "seed for entity placement (0 picks one from the clock)")
	flag.Parse()

	cfg := flythrough.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = flythrough.LoadConfigFile(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Loaded config from %s", *configFile)
	}

	game, err := render.NewGame(cfg, *seed, screenWidth, screenHeight)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Flythrough")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
