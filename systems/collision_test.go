package systems

import (
	"testing"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/systems/factory"
	"github.com/automoto/sharkie/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBoxOverlapsIsStrict(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"inside", Box{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Box{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Box{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Box{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Box{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
		})
	}
}

func TestBoxOfAppliesOffset(t *testing.T) {
	obj := &components.ObjectData{X: 100, Y: 50, W: 200, H: 200, Offset: cfg.Offset{Top: -110, Left: -50, Right: -50, Bottom: -50}}
	assert.Equal(t, Box{X: 150, Y: 160, W: 100, H: 40}, BoxOf(obj))
}

func TestBoxOverlapsSymmetric(t *testing.T) {
	genBox := func(t *rapid.T, label string) Box {
		return Box{
			X: rapid.Float64Range(-500, 500).Draw(t, label+"x"),
			Y: rapid.Float64Range(-500, 500).Draw(t, label+"y"),
			W: rapid.Float64Range(0, 300).Draw(t, label+"w"),
			H: rapid.Float64Range(0, 300).Draw(t, label+"h"),
		}
	}
	rapid.Check(t, func(t *rapid.T) {
		a, b := genBox(t, "a"), genBox(t, "b")
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatalf("asymmetric: %+v %+v", a, b)
		}
	})
}

func TestIsCollidingEntities(t *testing.T) {
	// Character hitbox at (0,0) spans x 50..150, y 110..150
	f := newFixture(t)
	c := f.character(0, 0)
	near := factory.CreateCoin(f.ecs, 100, 120)
	far := factory.CreateCoin(f.ecs, 600, 120)

	assert.True(t, IsColliding(c, near))
	assert.True(t, IsColliding(near, c))
	assert.False(t, IsColliding(c, far))
	assert.False(t, IsColliding(c, nil))

	edge := factory.CreateCoin(f.ecs, 100, 150)
	assert.False(t, IsColliding(c, edge), "touching edges do not collide")

	f.ecs.World.Remove(near.Entity())
	assert.False(t, IsColliding(c, near), "removed entries never collide")
}

func TestOverlappingFiltersByTag(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)
	puffer := factory.CreatePufferFish(f.ecs, 100, 50, f.rng)
	factory.CreateJellyFish(f.ecs, 100, 50, false, f.rng)

	got := Overlapping(c, tags.ResolvPufferFish)
	require.Len(t, got, 1)
	assert.Equal(t, puffer.Entity(), got[0].Entity())
}

func TestOverlappingWithoutSpace(t *testing.T) {
	f := newFixture(t)
	c := f.character(0, 0)
	puffer := factory.CreatePufferFish(f.ecs, 100, 50, f.rng)

	space := spaceOf(f.ecs.World)
	space.Remove(components.Object.Get(c).Body, components.Object.Get(puffer).Body)

	got := Overlapping(c, tags.ResolvPufferFish)
	require.Len(t, got, 1)
	assert.Equal(t, puffer.Entity(), got[0].Entity())
}
