package kepler3d

import (
	"fmt"
	"image/color"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/text"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Layer is a Surface that batches shapes and text for one pass. It converts
// surface coordinates to pixel's bottom-left origin.
type Layer struct {
	imd    *imdraw.IMDraw
	txt    *text.Text
	height float64
}

func newLayer(atlas *text.Atlas) *Layer {
	return &Layer{
		imd: imdraw.New(nil),
		txt: text.New(pixel.ZV, atlas),
	}
}

func (l *Layer) flip(v pixel.Vec) pixel.Vec {
	return pixel.V(v.X, l.height-v.Y)
}

func (l *Layer) DrawLine(a, b pixel.Vec, thickness float64, c color.Color) {
	l.imd.Color = c
	l.imd.Push(l.flip(a), l.flip(b))
	l.imd.Line(thickness)
}

func (l *Layer) DrawCircle(center pixel.Vec, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	l.imd.Color = c
	l.imd.Push(l.flip(center))
	l.imd.Circle(radius, 0)
}

func (l *Layer) DrawText(dot pixel.Vec, label string, c color.Color) {
	l.txt.Color = c
	l.txt.Dot = l.flip(dot)
	fmt.Fprint(l.txt, label)
}

// DrawRect fills the box between two corners.
func (l *Layer) DrawRect(min, max pixel.Vec, c color.Color) {
	l.imd.Color = c
	l.imd.Push(l.flip(min), l.flip(max))
	l.imd.Rectangle(0)
}

func (l *Layer) clear() {
	l.imd.Clear()
	l.imd.Reset()
	l.txt.Clear()
}

func (l *Layer) draw(t pixel.Target) {
	l.imd.Draw(t)
	l.txt.Draw(t, pixel.IM)
}

type DrawContext struct {
	// World holds the sorted primitives and anything pinned to them.
	World *Layer
	// UI is drawn over World.
	UI *Layer

	bounds pixel.Rect

	// Fonts
	hudFont   *text.Atlas
	labelFont *text.Atlas
}

func NewDrawContext(bounds pixel.Rect) *DrawContext {
	drawContext := new(DrawContext)

	var hudFace font.Face = basicfont.Face7x13
	tFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("[Draw] falling back to basic font: %v", err)
	} else {
		hudFace = truetype.NewFace(tFont, &truetype.Options{
			Size: 14.0,
			DPI:  96,
		})
	}

	drawContext.hudFont = text.NewAtlas(hudFace, text.ASCII)
	// Labels use the fixed face so Text2D can measure them.
	drawContext.labelFont = text.NewAtlas(basicfont.Face7x13, text.ASCII)

	drawContext.World = newLayer(drawContext.labelFont)
	drawContext.UI = newLayer(drawContext.hudFont)

	drawContext.SetBounds(bounds)
	return drawContext
}

func (d *DrawContext) SetBounds(bounds pixel.Rect) {
	d.bounds = bounds
	d.World.height = bounds.H()
	d.UI.height = bounds.H()
}

func (d *DrawContext) Bounds() pixel.Rect {
	return d.bounds
}

func (d *DrawContext) Reset() {
	d.World.clear()
	d.UI.clear()
}

func (d *DrawContext) Flush(t pixel.Target) {
	d.World.draw(t)
	d.UI.draw(t)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func (d *DrawContext) drawHUD(scene *Scene) {
	ui := d.UI
	w := d.bounds.W()
	h := d.bounds.H()

	ui.DrawRect(pixel.V(10, 10), pixel.V(310, 110), hudPanelColor)

	x := 20.0
	y := 25.0

	sortColor := hudOffColor
	if scene.DepthSortEnabled {
		sortColor = hudOnColor
	}
	ui.DrawRect(pixel.V(x, y), pixel.V(x+150, y+20), sortColor)
	ui.DrawText(pixel.V(x+160, y+15), "sort "+onOff(scene.DepthSortEnabled), hudTextColor)

	y += 30
	colorsColor := hudColorsOffColor
	if scene.ColorMode != colorsWhite {
		colorsColor = hudColorsOnColor
	}
	ui.DrawRect(pixel.V(x, y), pixel.V(x+150, y+20), colorsColor)
	ui.DrawText(pixel.V(x+160, y+15), scene.ColorMode.String(), hudTextColor)

	y += 30
	n := scene.Objects.Len()
	barWidth := pixel.Clamp(float64(n)/100*150, 0, 150)
	if barWidth > 0 {
		ui.DrawRect(pixel.V(x, y), pixel.V(x+barWidth, y+20), hudCountColor)
	}
	ui.DrawText(pixel.V(x+160, y+15), fmt.Sprintf("%d objects", n), hudTextColor)

	indicator := pixel.V(w-22, 28)
	ui.DrawCircle(indicator, 8, sortColor)

	status := fmt.Sprintf("fov %.0f  sensitivity %.5f", scene.Camera.FOV, scene.Camera.Sensitivity)
	if scene.Paused {
		status += "  PAUSED"
	}
	ui.DrawText(pixel.V(12, h-12), status, hudTextColor)
}

// DrawScene paints one frame: sorted primitives, the hovered primitive, HUD
// and crosshair, in that order.
func DrawScene(t pixel.Target, viewport Viewport, scene *Scene, d *DrawContext, in Input) {
	d.Reset()

	p := scene.Camera.Projection(viewport)
	scene.Objects.Draw(p, d.World, scene.colorOf)

	if scene.Hovering {
		obj := scene.Objects.Get(scene.Hovered)
		Draw(obj, p, d.World, scene.highlight())

		label := Text2D{
			Dot:   in.MousePosition().Add(pixel.V(14, -8)),
			Label: fmt.Sprintf("#%d  %.1f", scene.Hovered, obj.Distance(p.Eye)),
		}
		label.Draw(d.World, highlightColor)
	}

	d.drawHUD(scene)

	for _, line := range scene.Camera.Crosshair(in, viewport) {
		line.Draw(d.UI, crosshairColor)
	}

	d.Flush(t)
}
