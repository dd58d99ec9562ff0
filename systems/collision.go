package systems

import (
	"math"

	"github.com/automoto/sharkie/components"
	"github.com/yohamta/donburi"
)

// Box is an axis-aligned rectangle in world space.
type Box struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b share interior area. Touching edges do
// not count.
func (a Box) Overlaps(b Box) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// BoxOf derives the hitbox of a sprite rectangle from its offset inset.
func BoxOf(obj *components.ObjectData) Box {
	o := obj.Offset
	return Box{
		X: obj.X - o.Left,
		Y: obj.Y - o.Top,
		W: math.Max(0, obj.W+o.Left+o.Right),
		H: math.Max(0, obj.H+o.Top+o.Bottom),
	}
}

// BoundingBox returns the hitbox of e.
func BoundingBox(e *donburi.Entry) Box {
	return BoxOf(components.Object.Get(e))
}

// IsColliding tests the hitboxes of a and b.
func IsColliding(a, b *donburi.Entry) bool {
	if a == nil || b == nil || !a.Valid() || !b.Valid() {
		return false
	}
	if !a.HasComponent(components.Object) || !b.HasComponent(components.Object) {
		return false
	}
	return BoundingBox(a).Overlaps(BoundingBox(b))
}

// SyncObject mirrors the hitbox of e into its resolv body.
func SyncObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Body == nil {
		return
	}
	box := BoxOf(obj)
	obj.Body.X, obj.Body.Y = box.X, box.Y
	obj.Body.W, obj.Body.H = box.W, box.H
	if obj.Body.Space != nil {
		obj.Body.Update()
	}
}

// Overlapping returns the entries carrying any of tags whose hitbox
// overlaps e. The resolv space narrows the candidates; the strict box test
// decides, since resolv also reports objects that only share a cell.
func Overlapping(e *donburi.Entry, tags ...string) []*donburi.Entry {
	obj := components.Object.Get(e)
	if obj.Body == nil {
		return nil
	}
	if obj.Body.Space == nil {
		return scanOverlapping(e, tags...)
	}
	SyncObject(e)

	check := obj.Body.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || !other.Valid() || other.Entity() == e.Entity() {
			continue
		}
		SyncObject(other)
		if IsColliding(e, other) {
			out = append(out, other)
		}
	}
	return out
}

// scanOverlapping tests every tagged body in the world. Used when e is not
// in a space.
func scanOverlapping(e *donburi.Entry, tags ...string) []*donburi.Entry {
	var out []*donburi.Entry
	components.Object.Each(e.World, func(other *donburi.Entry) {
		body := components.Object.Get(other).Body
		if other.Entity() == e.Entity() || body == nil || !body.HasTags(tags...) {
			return
		}
		if IsColliding(e, other) {
			out = append(out, other)
		}
	})
	return out
}
