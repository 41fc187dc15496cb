package kepler3d

import (
	"fmt"
	"math"
	"runtime"

	"github.com/faiface/pixel"
)

// HSVToColor takes h in [0, 6).
func HSVToColor(h float64, s float64, v float64) pixel.RGBA {
	if h == 0 && s == 0 {
		return pixel.RGBA{R: v, G: v, B: v, A: 1.0}
	}

	c := s * v
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - c

	if h < 1 {
		return pixel.RGBA{R: c + m, G: x + m, B: m, A: 1.0}
	} else if h < 2 {
		return pixel.RGBA{R: x + m, G: c + m, B: m, A: 1.0}
	} else if h < 3 {
		return pixel.RGBA{R: m, G: c + m, B: x + m, A: 1.0}
	} else if h < 4 {
		return pixel.RGBA{R: m, G: x + m, B: c + m, A: 1.0}
	} else if h < 5 {
		return pixel.RGBA{R: x + m, G: m, B: c + m, A: 1.0}
	}

	return pixel.RGBA{R: c + m, G: m, B: x + m, A: 1.0}
}

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}

func PrintMemUsage() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	fmt.Printf("Alloc = %v MB", bToMb(m.Alloc))
	fmt.Printf("\tSys = %v MB", bToMb(m.Sys))
	fmt.Printf("\tNumGC = %v\n", m.NumGC)
}
