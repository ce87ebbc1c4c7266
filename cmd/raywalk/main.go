package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}
	applyFlagOverrides(&cfg)

	g, err := newGame(cfg)
	if err != nil {
		log.Fatalf("Setup failed: %v", err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("raywalk")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
