// Package progress runs the live recomputation loop. A single goroutine
// owns the derived state: every tick and every reset is applied on that
// goroutine, so streak projections are never mutated concurrently.
package progress

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/reclaimhq/reclaim/internal/constants"
	"github.com/reclaimhq/reclaim/internal/errors"
	"github.com/reclaimhq/reclaim/internal/milestone"
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/notifier"
	"github.com/reclaimhq/reclaim/internal/streak"
	"github.com/reclaimhq/reclaim/internal/timecalc"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateResetting
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateResetting:
		return "resetting"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Snapshot is one published frame of derived progress state.
type Snapshot struct {
	State      State
	Streak     models.Streak
	Components timecalc.Components
	Days       int
	Unlocked   int
	Next       *models.Milestone
	Progress   float64
}

var ErrNotRunning = stderrors.New("progress coordinator is not running")

// Coordinator drives the 1 Hz recomputation loop: it pulls elapsed time
// from the clock, feeds the day count into the milestone engine, and
// republishes derived state. Create with New, start with Setup, and always
// Stop before discarding.
type Coordinator struct {
	streaks  *streak.Manager
	engine   *milestone.Engine
	calc     timecalc.Calculator
	sink     notifier.Sink
	now      func() time.Time
	interval time.Duration

	commands  chan func()
	snapshots chan Snapshot
	cancel    context.CancelFunc
	done      chan struct{}

	mu     sync.Mutex
	state  State
	active models.Streak
}

func New(streaks *streak.Manager, engine *milestone.Engine, calc timecalc.Calculator, sink notifier.Sink) *Coordinator {
	return &Coordinator{
		streaks:   streaks,
		engine:    engine,
		calc:      calc,
		sink:      sink,
		now:       time.Now,
		interval:  constants.TickInterval,
		commands:  make(chan func()),
		snapshots: make(chan Snapshot, 1),
	}
}

// State reports the coordinator's current lifecycle state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Coordinator) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Snapshots returns the channel the coordinator publishes derived state on.
// The channel holds only the latest frame: a slow consumer sees frames
// coalesced, never a backlog.
func (c *Coordinator) Snapshots() <-chan Snapshot {
	return c.snapshots
}

// Setup loads the active streak, bootstrapping one on first-ever run, and
// starts the recomputation loop. It publishes an initial snapshot before
// returning so consumers are not blank until the first tick.
func (c *Coordinator) Setup(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateUninitialized {
		c.mu.Unlock()
		return stderrors.New("progress coordinator already started")
	}
	c.state = StateLoading
	c.mu.Unlock()

	active, err := c.streaks.FetchActive()
	if err != nil {
		c.setState(StateUninitialized)
		c.sink.ReportError(err, "progress.Setup")
		return err
	}
	if active == nil {
		// First-ever run: start the clock now.
		created, err := c.streaks.StartNewStreak()
		if err != nil {
			c.setState(StateUninitialized)
			c.sink.ReportError(err, "progress.Setup")
			return err
		}
		active = &created
	}

	c.mu.Lock()
	c.active = *active
	c.state = StateReady
	c.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.run(runCtx)

	c.publish(c.recompute())
	return nil
}

// Reset ends the current streak and starts a fresh one. The new zeroed
// snapshot is published immediately rather than on the next tick. On
// failure the previous active streak is left in place and the fault is
// surfaced to both the sink and the caller.
func (c *Coordinator) Reset() (models.Streak, error) {
	if c.State() != StateReady {
		return models.Streak{}, ErrNotRunning
	}

	type result struct {
		streak models.Streak
		err    error
	}
	reply := make(chan result, 1)

	cmd := func() {
		c.setState(StateResetting)
		fresh, err := c.streaks.ResetStreak()
		if err != nil {
			c.setState(StateReady)
			c.sink.ReportError(err, "progress.Reset")
			reply <- result{err: err}
			return
		}
		c.mu.Lock()
		c.active = fresh
		c.state = StateReady
		c.mu.Unlock()
		c.publish(c.recompute())
		reply <- result{streak: fresh}
	}

	select {
	case c.commands <- cmd:
	case <-c.done:
		return models.Streak{}, ErrNotRunning
	}

	select {
	case r := <-reply:
		return r.streak, r.err
	case <-c.done:
		return models.Streak{}, ErrNotRunning
	}
}

// Stop cancels the loop. No tick is applied after Stop returns; restarting
// requires a fresh coordinator.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if c.state == StateStopped || c.state == StateUninitialized {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.cancel()
	<-c.done
	c.setState(StateStopped)
}

// run owns all state application. Ticks and commands are handled one at a
// time on this goroutine, so a tick never interleaves with a reset.
func (c *Coordinator) run(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-c.commands:
			cmd()
		case <-ticker.C:
			// Re-check cancellation so a tick already queued when Stop
			// was called is dropped, not applied.
			if ctx.Err() != nil {
				return
			}
			c.tick()
		}
	}
}

func (c *Coordinator) tick() {
	snap := c.recompute()
	c.publish(snap)

	unlocked, err := c.engine.DetectNewlyUnlocked(snap.Days)
	if err != nil {
		// Already logged at the engine boundary with its context label.
		return
	}
	if unlocked != nil {
		c.sink.AnnounceMilestone(*unlocked)
	}
}

func (c *Coordinator) recompute() Snapshot {
	c.mu.Lock()
	active := c.active
	state := c.state
	c.mu.Unlock()

	now := c.now()
	components := c.calc.Components(active.StartDate, now)
	days := active.Days(now)

	return Snapshot{
		State:      state,
		Streak:     active,
		Components: components,
		Days:       days,
		Unlocked:   c.engine.UnlockedCount(days),
		Next:       c.engine.NextMilestone(days),
		Progress:   c.engine.ProgressToNext(days),
	}
}

// publish keeps only the newest frame in the buffer.
func (c *Coordinator) publish(s Snapshot) {
	for {
		select {
		case c.snapshots <- s:
			return
		default:
			select {
			case <-c.snapshots:
			default:
			}
		}
	}
}

// ActiveStreak returns the coordinator's current projection of the active
// streak.
func (c *Coordinator) ActiveStreak() models.Streak {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// ReportError forwards a fault to the coordinator's sink. Exposed so the
// presentation layer can reuse the wiring for faults of its own.
func (c *Coordinator) ReportError(err error, context string) {
	c.sink.ReportError(errors.From(err), context)
}
