package kepler3d

import (
	"image/color"
	"sort"

	"github.com/faiface/pixel"
	"github.com/nathanKramer/kepler3d/math4"
)

// Handle is a stable id for a primitive owned by an Arena.
type Handle int

type slot struct {
	obj             Object3D
	distance        float64
	distanceUpdated bool
}

// Arena owns primitives. Handles stay valid until Clear.
type Arena struct {
	slots []slot
}

func (a *Arena) Add(obj Object3D) Handle {
	a.slots = append(a.slots, slot{obj: obj})
	return Handle(len(a.slots) - 1)
}

func (a *Arena) Get(h Handle) Object3D {
	return a.slots[h].obj
}

func (a *Arena) Len() int {
	return len(a.slots)
}

func (a *Arena) Clear() {
	for i := range a.slots {
		a.slots[i] = slot{}
	}
	a.slots = a.slots[:0]
}

// Distance is computed on first read after a reset and cached until the next
// one.
func (a *Arena) Distance(h Handle, eye math4.Vec4) float64 {
	s := &a.slots[h]
	if !s.distanceUpdated {
		s.distance = s.obj.Distance(eye)
		s.distanceUpdated = true
	}
	return s.distance
}

func (a *Arena) resetDistance(h Handle) {
	a.slots[h].distanceUpdated = false
}

// Collection is a draw order over primitives living in an Arena. It does not
// own them.
type Collection struct {
	arena   *Arena
	handles []Handle
}

func NewCollection(arena *Arena) *Collection {
	return &Collection{arena: arena}
}

func (c *Collection) Add(h Handle) {
	c.handles = append(c.handles, h)
}

func (c *Collection) Clear() {
	c.handles = c.handles[:0]
}

func (c *Collection) Len() int {
	return len(c.handles)
}

// Handles is the current traversal order. The slice is shared with the
// collection.
func (c *Collection) Handles() []Handle {
	return c.handles
}

func (c *Collection) Get(h Handle) Object3D {
	return c.arena.Get(h)
}

func (c *Collection) Distance(h Handle, eye math4.Vec4) float64 {
	return c.arena.Distance(h, eye)
}

func (c *Collection) ResetDistances() {
	for _, h := range c.handles {
		c.arena.resetDistance(h)
	}
}

// DepthSort orders the collection farthest first for painting. Equal
// distances keep handle order so the result is deterministic.
func (c *Collection) DepthSort(camera *Camera) {
	c.ResetDistances()
	eye := camera.Position()

	sort.SliceStable(c.handles, func(i, j int) bool {
		hi, hj := c.handles[i], c.handles[j]
		di, dj := c.arena.Distance(hi, eye), c.arena.Distance(hj, eye)
		if di != dj {
			return di > dj
		}
		return hi < hj
	})
}

// Draw paints every visible member in traversal order. colorOf gets the
// position in that order as well as the handle.
func (c *Collection) Draw(p Projection, s Surface, colorOf func(i int, h Handle) color.Color) int {
	drawn := 0
	for i, h := range c.handles {
		if Draw(c.arena.Get(h), p, s, colorOf(i, h)) {
			drawn++
		}
	}
	return drawn
}

// Pick returns the member drawn last, and so on top, whose projected shape
// contains point.
func (c *Collection) Pick(p Projection, point pixel.Vec) (Handle, bool) {
	for i := len(c.handles) - 1; i >= 0; i-- {
		h := c.handles[i]
		shape, ok := c.arena.Get(h).Project(p)
		if ok && shape.Contains(point) {
			return h, true
		}
	}
	return 0, false
}
