package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tumbang-preso/audio"
	"github.com/automoto/tumbang-preso/clock"
	"github.com/automoto/tumbang-preso/config"
	"github.com/automoto/tumbang-preso/fonts"
	"github.com/automoto/tumbang-preso/scenes"
	"github.com/automoto/tumbang-preso/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "tumbang-preso"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewTumbangScene(clock.NewReal()),
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
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "draw physics and round diagnostics, log ignored input")
	seed := flag.Uint64("seed", 0, "pin the throw spin sequence (0 = random)")
	noPreview := flag.Bool("no-preview", false, "start with the trajectory preview hidden")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	// Tuning is applied before flags so the command line wins
	if err := config.LoadTuning(appName); err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
	}

	config.Debug.Overlay = *debug
	config.Debug.LogInput = *debug
	if *seed != 0 {
		config.Throw.SpinSeed = *seed
	}
	if *noPreview {
		config.Trajectory.Enabled = false
	}

	config.Audio.Muted = config.Audio.Muted || *mute

	if !config.Audio.Muted {
		sound := audio.NewManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Warning: Could not initialize audio: %v", err)
		} else {
			systems.UseAudio(sound)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
