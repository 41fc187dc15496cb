package kepler3d

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const windowTitle = "Depth Sorting Test - kepler3d"

var BackgroundColor = color.RGBA{20, 20, 30, 0xff}
var highlightColor = colornames.Yellow
var crosshairColor = colornames.White
var hudTextColor = colornames.White

var hudPanelColor = color.RGBA{0, 0, 0, 180}
var hudOnColor = colornames.Green
var hudOffColor = colornames.Red
var hudColorsOnColor = colornames.Yellow
var hudColorsOffColor = color.RGBA{100, 100, 100, 0xff}
var hudCountColor = colornames.Cyan

type CameraConfig struct {
	FOV               float64 `yaml:"fov"`
	Sensitivity       float64 `yaml:"sensitivity"`
	SpeedNormal       float64 `yaml:"speed_normal"`
	SpeedFast         float64 `yaml:"speed_fast"`
	SpeedSlow         float64 `yaml:"speed_slow"`
	Near              float64 `yaml:"near"`
	AllowMouseLocking bool    `yaml:"allow_mouse_locking"`
}

type SceneConfig struct {
	Objects        int     `yaml:"objects"`
	PositionRange  float64 `yaml:"position_range"`
	MinRadius      float64 `yaml:"min_radius"`
	MaxRadius      float64 `yaml:"max_radius"`
	MinThickness   float64 `yaml:"min_thickness"`
	MaxThickness   float64 `yaml:"max_thickness"`
	MinChannel     int     `yaml:"min_channel"`
	MaxChannel     int     `yaml:"max_channel"`
	CameraDistance float64 `yaml:"camera_distance"`
}

type Config struct {
	Title        string       `yaml:"title"`
	ScreenWidth  float64      `yaml:"screen_width"`
	ScreenHeight float64      `yaml:"screen_height"`
	Fullscreen   bool         `yaml:"fullscreen"`
	VSync        bool         `yaml:"vsync"`
	Audio        bool         `yaml:"audio"`
	Colors       bool         `yaml:"colors"`
	Camera       CameraConfig `yaml:"camera"`
	Scene        SceneConfig  `yaml:"scene"`
}

// DefaultCameraConfig matches the original tuning: 500 FOV, slow mouse,
// 5/100/2 movement speeds and a 0.01 near plane.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FOV:               500,
		Sensitivity:       0.001,
		SpeedNormal:       5,
		SpeedFast:         100,
		SpeedSlow:         2,
		Near:              0.01,
		AllowMouseLocking: true,
	}
}

func DefaultConfig() Config {
	return Config{
		Title:        windowTitle,
		ScreenWidth:  1600,
		ScreenHeight: 1000,
		Fullscreen:   false,
		VSync:        true,
		Audio:        true,
		Colors:       true,
		Camera:       DefaultCameraConfig(),
		Scene: SceneConfig{
			Objects:        60,
			PositionRange:  200,
			MinRadius:      3,
			MaxRadius:      25,
			MinThickness:   1.5,
			MaxThickness:   6,
			MinChannel:     80,
			MaxChannel:     255,
			CameraDistance: 400,
		},
	}
}
