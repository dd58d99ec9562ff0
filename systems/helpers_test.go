package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/sharkie/components"
	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fixture struct {
	ecs   *ecs.ECS
	sound *ports.RecordingSound
	notes *ports.RecordingNotifier
	kb    *ports.Keyboard
	rng   *rand.Rand
}

// newFixture builds a world with recording ports, a collision space, the
// HUD bars and a camera, but no level entities.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	f := &fixture{
		ecs:   e,
		sound: ports.NewRecordingSound(),
		notes: &ports.RecordingNotifier{},
		kb:    &ports.Keyboard{},
		rng:   rand.New(rand.NewSource(1)),
	}

	svc := GetOrCreateServices(e.World)
	svc.Sound = f.sound
	svc.Notifier = f.notes
	svc.Keyboard = f.kb

	factory.CreateSpace(e, 4000, 2000, 16, 16)
	factory.CreateCamera(e)
	factory.CreateStatusBars(e)
	return f
}

func (f *fixture) character(x, y float64) *donburi.Entry {
	return factory.CreateCharacter(f.ecs, x, y)
}

// advance moves the game clock without running any system.
func (f *fixture) advance(d time.Duration) {
	GetOrCreateServices(f.ecs.World).Clock.Advance(d)
}

// spawnedBoss returns a boss that has finished its spawn sequence.
func (f *fixture) spawnedBoss(x, y float64) *donburi.Entry {
	boss := factory.CreateEndboss(f.ecs, x, y)
	b := components.Endboss.Get(boss)
	b.Phase = components.BossActive
	b.SpawnCompleted = true
	components.Animation.Get(boss).PlayAnimation(cfg.Idle)
	return boss
}

// steps runs the full step pipeline n times.
func (f *fixture) steps(n int) {
	for i := 0; i < n; i++ {
		UpdateClock(f.ecs)
		WithGameplayChecks(UpdateCharacter)(f.ecs)
		WithGameplayChecks(UpdateBubbles)(f.ecs)
		WithGameplayChecks(UpdateBehaviours)(f.ecs)
		WithGameplayChecks(UpdateTimers)(f.ecs)
		WithGameplayChecks(UpdateDeaths)(f.ecs)
		WithGameplayChecks(UpdateCollectibles)(f.ecs)
		WithLogicTick(UpdateLogic)(f.ecs)
		WithGameplayChecks(UpdateRemovals)(f.ecs)
	}
}

// stepsFor returns how many fixed steps cover d.
func stepsFor(d time.Duration) int {
	step := cfg.C.Step()
	return int((d + step - 1) / step)
}

func soundCall(op string, id cfg.SoundID) ports.SoundCall {
	return ports.SoundCall{Op: op, ID: id}
}
