// Package game implements the main simulation loop and scene management.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hoopshot/internal/config"
	"github.com/Faultbox/hoopshot/internal/engine/camera"
	"github.com/Faultbox/hoopshot/internal/engine/input"
	"github.com/Faultbox/hoopshot/internal/game/hoops"
	"github.com/Faultbox/hoopshot/internal/game/states"
	"github.com/Faultbox/hoopshot/internal/logger"
	"github.com/Faultbox/hoopshot/pkg/math"
)

// settleSeconds is how long a script-bounded run keeps going after the
// last scripted event so a ball in the air can land.
const settleSeconds = 10

var ErrNothingToRun = errors.New("no frame count and no script")

// Summary totals a session.
type Summary struct {
	Ball       string
	Frames     int
	Throws     int
	Assisted   int
	Scores     int
	Wins       int
	Collisions int
	Bounces    int
	Landings   int
	FinalScore int
	Quit       bool
}

// Session is one play-through: ball selection then gameplay, stepped at a
// fixed rate.
type Session struct {
	cfg     *config.Config
	manager *states.Manager
	queue   *input.Queue
	world   *hoops.GameState
	ball    string
	summary Summary
}

// New creates a session in the ball selection scene.
func New(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		manager: states.NewManager(),
		queue:   input.NewQueue(),
	}
	cam := camera.NewFirstPerson(cfg.Camera)
	s.world = hoops.NewGameState(cfg.Physics, cfg.Court, cfg.Curves, cam)

	s.manager.Change(states.NewSelectionState(s.manager, func(ball string) states.State {
		s.ball = ball
		return states.NewGameplayState(ball, s.world, s.record)
	}))

	logger.Info("session created",
		zap.Int("tickRate", cfg.Sim.TickRate),
		logger.Vec3("hoop", s.world.Court.HoopCenter()),
		logger.Vec3("camera", cfg.Camera.Position))
	return s, nil
}

// Queue returns the input queue. Events pushed here are applied on the
// next frame, after that frame's scripted events.
func (s *Session) Queue() *input.Queue {
	return s.queue
}

// World returns the game state.
func (s *Session) World() *hoops.GameState {
	return s.world
}

// Run steps the session until the frame budget is spent, a quit event
// arrives or ctx is done. script may be nil.
func (s *Session) Run(ctx context.Context, script *input.Script) (Summary, error) {
	frames := s.cfg.Sim.Frames
	if frames == 0 {
		if script.LastFrame() < 0 {
			return s.summary, ErrNothingToRun
		}
		frames = script.LastFrame() + 1 + settleSeconds*s.cfg.Sim.TickRate
	}

	dt := 1.0 / float64(s.cfg.Sim.TickRate)

	var tick <-chan time.Time
	if s.cfg.Sim.Realtime {
		ticker := time.NewTicker(time.Second / time.Duration(s.cfg.Sim.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	logger.Info("starting simulation",
		zap.Int("frames", frames),
		zap.Bool("realtime", s.cfg.Sim.Realtime))

	for frame := 0; frame < frames; frame++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return s.finish(), ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return s.finish(), err
		}

		for _, e := range script.EventsAt(frame) {
			s.queue.Push(e)
		}

		quit := false
		for _, e := range s.queue.Drain() {
			if e.Type == input.EventQuit {
				quit = true
				break
			}
			if err := s.manager.HandleInput(e); err != nil {
				return s.finish(), fmt.Errorf("frame %d input: %w", frame, err)
			}
		}
		if quit {
			logger.Info("quit requested", zap.Int("frame", frame))
			s.summary.Quit = true
			break
		}

		if err := s.manager.Update(dt); err != nil {
			return s.finish(), fmt.Errorf("frame %d update: %w", frame, err)
		}
		s.summary.Frames++

		if frame > 0 && frame%s.cfg.Sim.TickRate == 0 {
			logger.Debug("tick",
				zap.Int("frame", frame),
				zap.Stringer("phase", s.world.Ball.Phase),
				logger.Vec3("ball", s.world.Ball.Position))
		}
	}

	sum := s.finish()
	logger.Info("simulation finished",
		zap.Int("frames", sum.Frames),
		zap.Int("scores", sum.Scores),
		zap.Int("wins", sum.Wins))
	return sum, nil
}

func (s *Session) finish() Summary {
	s.summary.Ball = s.ball
	s.summary.FinalScore = s.world.Score.Points
	return s.summary
}

// record is called with every gameplay frame.
func (s *Session) record(f hoops.Frame) {
	if f.Thrown {
		s.summary.Throws++
		if f.Assisted {
			s.summary.Assisted++
		}
		logger.Info("ball thrown",
			zap.Int("frame", f.Index),
			zap.Bool("assisted", f.Assisted),
			logger.Vec3("from", s.world.Camera.HoldPosition()))
		if len(f.Guide) > 0 {
			logger.Debug("aim guide", zap.Int("points", len(f.Guide)), logger.Vec3("apex", apex(f.Guide)))
		}
	}
	if f.Collided {
		s.summary.Collisions++
		logger.Debug("ball hit obstacle",
			zap.Int("frame", f.Index),
			zap.String("obstacle", f.Obstacle),
			logger.Vec3("velocity", f.Ball.Velocity))
	}
	if f.Ball.Bounced {
		s.summary.Bounces++
		logger.Debug("ball bounced", zap.Int("frame", f.Index), zap.Float32("vy", f.Ball.Velocity.Y))
	}
	if f.Ball.Landed {
		s.summary.Landings++
		logger.Debug("ball at rest", zap.Int("frame", f.Index))
	}
	if f.Scored {
		s.summary.Scores++
		logger.Info("hoop!", zap.Int("frame", f.Index), zap.Int("score", f.Score))
	}
	if f.Won {
		s.summary.Wins++
		logger.Info("win, score reset", zap.Int("frame", f.Index))
	}
}

// apex returns the highest point of a curve.
func apex(points []math.Vec3) math.Vec3 {
	top := points[0]
	for _, p := range points[1:] {
		if p.Y > top.Y {
			top = p
		}
	}
	return top
}
