package scenes

import (
	"testing"
	"time"

	cfg "github.com/automoto/sharkie/config"
	"github.com/automoto/sharkie/ports"
	"github.com/automoto/sharkie/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepsFor(d time.Duration) int {
	step := cfg.C.Step()
	return int((d + step - 1) / step)
}

func TestGameSceneWaitsForTeardown(t *testing.T) {
	gs := &GameScene{session: &Session{}}
	w, err := NewWorld(WorldOptions{Notifier: ports.NotifierFunc(gs.notify)})
	require.NoError(t, err)
	gs.world = w
	w.Start()

	systems.EndMatch(w.ECS(), cfg.OutcomeLose)
	for i := 0; i <= stepsFor(cfg.C.EndScreenDelay); i++ {
		w.Update()
	}
	require.Equal(t, cfg.OutcomeLose, gs.ended, "outcome notified")
	assert.False(t, gs.finished(), "teardown still pending")

	for i := 0; i <= stepsFor(cfg.C.TeardownDelay); i++ {
		w.Update()
	}
	assert.True(t, w.Stopped())
	assert.True(t, gs.finished())
}
