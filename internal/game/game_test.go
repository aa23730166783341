package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/hoopshot/internal/config"
	"github.com/Faultbox/hoopshot/internal/engine/input"
	"github.com/Faultbox/hoopshot/internal/game/hoops"
	"github.com/Faultbox/hoopshot/internal/logger"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })
	return logs
}

func script(t *testing.T, src string) *input.Script {
	t.Helper()
	s, err := input.ParseScript([]byte(src))
	require.NoError(t, err)
	return s
}

func TestRunScriptedThrow(t *testing.T) {
	logs := observe(t)

	cfg := config.Default()
	s, err := New(cfg)
	require.NoError(t, err)

	sum, err := s.Run(context.Background(), script(t, `
events:
  - {frame: 0, type: select_ball, ball: 1}
  - {frame: 0, type: confirm}
  - {frame: 3, type: look, dx: 0, dy: 50}
  - {frame: 4, type: assisted_throw}
  - {frame: 5, type: throw}
`))
	require.NoError(t, err)

	assert.Equal(t, "orange", sum.Ball)
	assert.Equal(t, 6+settleSeconds*cfg.Sim.TickRate, sum.Frames)
	assert.Equal(t, 1, sum.Throws, "second throw while airborne is ignored")
	assert.Equal(t, 1, sum.Assisted)
	assert.False(t, sum.Quit)

	thrown := logs.FilterMessage("ball thrown").All()
	require.Len(t, thrown, 1)
	assert.Equal(t, true, thrown[0].ContextMap()["assisted"])
	assert.Equal(t, int64(4), thrown[0].ContextMap()["frame"])
	assert.Equal(t, 1, logs.FilterMessage("simulation finished").Len())
}

func TestRunStopsOnQuit(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Frames = 100
	s, err := New(cfg)
	require.NoError(t, err)

	sum, err := s.Run(context.Background(), script(t, `
events:
  - {frame: 0, type: confirm}
  - {frame: 7, type: quit}
`))
	require.NoError(t, err)
	assert.True(t, sum.Quit)
	assert.Equal(t, 7, sum.Frames)
	assert.Equal(t, "basketball", sum.Ball)
}

func TestRunUsesQueue(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Frames = 3
	s, err := New(cfg)
	require.NoError(t, err)

	s.Queue().Push(input.Event{Type: input.EventConfirm})
	_, err = s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, hoops.PhaseAtRest, s.World().Ball.Phase)
	assert.Equal(t, 3, s.World().FrameCount(), "gameplay runs from the confirm frame")
}

func TestRunCancelled(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Frames = 10
	s, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := s.Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, sum.Frames)
}

func TestRunRealtime(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Frames = 5
	cfg.Sim.TickRate = 1000
	cfg.Sim.Realtime = true
	s, err := New(cfg)
	require.NoError(t, err)

	sum, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Frames)
}

func TestRunNeedsFramesOrScript(t *testing.T) {
	s, err := New(config.Default())
	require.NoError(t, err)

	_, err = s.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrNothingToRun)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.TickRate = 0

	_, err := New(cfg)
	require.ErrorIs(t, err, config.ErrInvalid)
}
