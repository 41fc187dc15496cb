package kepler3d

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"golang.org/x/image/colornames"

	"github.com/nathanKramer/kepler3d/math4"
)

type colorMode int

const (
	colorsRandom colorMode = iota
	colorsWhite
	colorsDepth
	colorModeCount
)

func (m colorMode) String() string {
	switch m {
	case colorsRandom:
		return "colors: random"
	case colorsWhite:
		return "colors: white"
	case colorsDepth:
		return "colors: depth"
	}
	return "colors: ?"
}

// SoundPlayer plays a named cue. A nil player is silent.
type SoundPlayer interface {
	PlaySound(name string)
}

// Scene is the demo harness state: random primitives, their colors, the
// camera and the toggles bound to T, G, C and Space.
type Scene struct {
	Camera  *Camera
	Objects *Collection

	arena  Arena
	colors []color.RGBA

	DepthSortEnabled bool
	ColorMode        colorMode
	Paused           bool
	AnimationTime    float64

	Hovered  Handle
	Hovering bool

	Sounds SoundPlayer

	config    Config
	rng       *rand.Rand
	lastFrame time.Time
}

func NewScene(config Config, rng *rand.Rand) *Scene {
	scene := new(Scene)
	scene.config = config
	scene.rng = rng
	scene.Objects = NewCollection(&scene.arena)

	scene.Camera = NewCamera(config.Camera)
	scene.Camera.Pose = math4.Translation(0, 0, -config.Scene.CameraDistance)

	scene.DepthSortEnabled = true
	scene.ColorMode = colorsRandom
	if !config.Colors {
		scene.ColorMode = colorsWhite
	}
	scene.lastFrame = time.Now()

	scene.GenerateObjects(config.Scene.Objects)
	return scene
}

func (s *Scene) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *Scene) randomPoint() math4.Vec4 {
	r := s.config.Scene.PositionRange
	return math4.Point(s.uniform(-r, r), s.uniform(-r, r), s.uniform(-r, r))
}

func (s *Scene) randomChannel() uint8 {
	lo, hi := s.config.Scene.MinChannel, s.config.Scene.MaxChannel
	if hi < lo {
		lo, hi = hi, lo
	}
	v := lo + s.rng.Intn(hi-lo+1)
	return uint8(math.Max(0, math.Min(255, float64(v))))
}

// GenerateObjects replaces everything in the scene with n random spheres and
// lines.
func (s *Scene) GenerateObjects(n int) {
	s.Objects.Clear()
	s.arena.Clear()
	s.colors = s.colors[:0]
	s.Hovering = false

	sc := s.config.Scene
	for i := 0; i < n; i++ {
		c := color.RGBA{s.randomChannel(), s.randomChannel(), s.randomChannel(), 0xff}

		var obj Object3D
		if s.rng.Intn(2) == 0 {
			obj = NewSphere3D(s.randomPoint(), s.uniform(sc.MinRadius, sc.MaxRadius))
		} else {
			obj = NewLine3D(s.randomPoint(), s.randomPoint(), s.uniform(sc.MinThickness, sc.MaxThickness))
		}

		// Handles and colors line up because the arena was just cleared.
		s.Objects.Add(s.arena.Add(obj))
		s.colors = append(s.colors, c)
	}

	fmt.Printf("[Scene] generated %d random objects\n", n)
}

func (s *Scene) playSound(name string) {
	if s.Sounds != nil {
		s.Sounds.PlaySound(name)
	}
}

// HandleEvent applies the harness toggles and passes every event on to the
// camera.
func (s *Scene) HandleEvent(ev Event) {
	if key, ok := ev.(KeyPressed); ok {
		switch key.Action {
		case ActionToggleSort:
			s.DepthSortEnabled = !s.DepthSortEnabled
			fmt.Printf("[Scene] depth sorting: %s\n", onOff(s.DepthSortEnabled))
			if s.DepthSortEnabled {
				s.playSound("sort/on")
			} else {
				s.playSound("sort/off")
			}

		case ActionRegenerate:
			s.GenerateObjects(s.config.Scene.Objects)
			s.playSound("scene/generate")

		case ActionCycleColors:
			s.ColorMode = (s.ColorMode + 1) % colorModeCount
			fmt.Printf("[Scene] %s\n", s.ColorMode)
			s.playSound("colors/cycle")

		case ActionPause:
			s.Paused = !s.Paused
			if s.Paused {
				fmt.Printf("[Scene] animation: PAUSED\n")
			} else {
				fmt.Printf("[Scene] animation: RUNNING\n")
			}
			s.playSound("scene/pause")
		}
	}

	s.Camera.HandleEvent(ev)
}

// Update runs one frame: events, camera, sort, then hover picking. Sorting
// has to finish before anything of this frame is drawn.
func (s *Scene) Update(in Input, viewport Viewport, events []Event, dt float64) {
	for _, ev := range events {
		s.HandleEvent(ev)
	}

	s.Camera.Update(in, viewport)

	if !s.Paused {
		s.AnimationTime += dt
	}

	if s.DepthSortEnabled {
		s.Objects.DepthSort(s.Camera)
	}

	s.Hovering = false
	if !s.Camera.MouseLocked && !in.Held(ActionLook) {
		s.Hovered, s.Hovering = s.Objects.Pick(s.Camera.Projection(viewport), in.MousePosition())
	}
}

func UpdateScene(in Input, viewport Viewport, scene *Scene, events []Event) {
	dt := math.Min(time.Since(scene.lastFrame).Seconds(), 0.1)
	scene.lastFrame = time.Now()

	scene.Update(in, viewport, events, dt)
}

func (s *Scene) colorOf(i int, h Handle) color.Color {
	switch s.ColorMode {
	case colorsWhite:
		return colornames.White
	case colorsDepth:
		// Farthest is drawn first and darkest.
		n := s.Objects.Len()
		return HSVToColor(3.6, 0.5, 0.25+0.75*float64(i+1)/float64(n))
	}
	return s.colors[h]
}

// highlight cycles hue with animation time, so it holds still while paused.
func (s *Scene) highlight() color.Color {
	return HSVToColor(math.Mod(s.AnimationTime*2, 6), 0.8, 1.0)
}
