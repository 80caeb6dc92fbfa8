package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/automoto/boxdrag/config"
	"github.com/automoto/boxdrag/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(watcher *config.Watcher) *Game {
	return &Game{
		scene: scenes.NewDragScene(watcher),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "boxdrag.yaml", "path to the YAML config file")
	watch := flag.Bool("watch", true, "reload drag tuning when the config file changes")
	flag.Parse()

	f, err := config.Load(*configPath)
	switch {
	case err == nil:
		config.Apply(f)
		log.Printf("[config] loaded %s", *configPath)
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("[config] %s not found, using defaults", *configPath)
	default:
		log.Fatalf("Failed to load config: %v", err)
	}

	var watcher *config.Watcher
	if *watch && err == nil {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *configPath, err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
