package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"

	"github.com/nathanKramer/kepler3d/kepler3d"
)

// To read about how to use these profiles,
// https://blog.golang.org/pprof
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")
var configPath = flag.String("config", "./kepler3d.yml", "yaml config to load")
var dumpConfig = flag.Bool("dump-config", false, "write the effective config to -config and exit")
var seed = flag.Int64("seed", 0, "random seed for the scene, 0 picks one from the clock")

func loadConfig() kepler3d.Config {
	config, err := kepler3d.ReadConfig(*configPath)
	if err != nil {
		log.Printf("[Boot] %v, using defaults", err)
	}
	return config
}

func run() {
	config := loadConfig()

	cfg := pixelgl.WindowConfig{
		Title:  config.Title,
		Bounds: pixel.R(0, 0, config.ScreenWidth, config.ScreenHeight),
		VSync:  config.VSync,
	}
	if config.Fullscreen {
		cfg.Monitor = pixelgl.PrimaryMonitor()
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.Fatal(err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	fmt.Printf("[Boot] seed %d\n", s)

	draw := kepler3d.NewDrawContext(win.Bounds())
	scene := kepler3d.NewScene(config, rand.New(rand.NewSource(s)))
	ui := NewUi(win)
	scene.Camera.Anchor = ui.MousePosition()

	if board := newSoundBoard(config.Audio); board != nil {
		scene.Sounds = board
	}

	fmt.Println("Press T to toggle depth sorting and see the difference!")
	fmt.Println("Move around with WASD/QE, hold right mouse or press ESC to look around")

	kepler3d.PrintMemUsage()

	for !win.Closed() {
		if win.Bounds() != draw.Bounds() {
			draw.SetBounds(win.Bounds())
		}

		kepler3d.UpdateScene(ui, win, scene, ui.Events())

		win.Clear(kepler3d.BackgroundColor)
		kepler3d.DrawScene(win, win, scene, draw, ui)

		win.Update()
	}

	kepler3d.PrintMemUsage()
}

func main() {
	flag.Parse()

	if *dumpConfig {
		config := loadConfig()
		if err := config.WriteToFile(*configPath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("[Boot] wrote %s\n", *configPath)
		return
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	pixelgl.Run(run)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
