package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

// DefaultFeedbackDelay is how long the answer feedback is shown before the game moves on.
const DefaultFeedbackDelay = 800 * time.Millisecond

const saveTimeout = 5 * time.Second

// Snapshot is an immutable view of the engine state handed to the presentation layer.
// Version grows with every published state, so an older snapshot can be recognised and dropped.
type Snapshot struct {
	State
	Version uint64
}

// QuizEngine drives the game of one player: it applies intents to the state machine,
// runs the requested effects and publishes snapshots.
type QuizEngine struct {
	mu      sync.Mutex
	machine Machine
	state   State
	version uint64

	riddles   RiddleProvider
	progress  ProgressStore
	scheduler Scheduler
	notifier  Notifier
	logger    *zap.Logger
	delay     time.Duration

	ctx         context.Context
	cancelFetch context.CancelFunc
	timer       Timer
	closed      bool

	lastActivity time.Time
	now          func() time.Time
	run          func(func())
}

// NewQuizEngine creates an engine on the MENU screen. The player's progress is read
// once here; a failed read starts the player with no completed levels.
func NewQuizEngine(
	ctx context.Context,
	riddles RiddleProvider,
	progress ProgressStore,
	scheduler Scheduler,
	notifier Notifier,
	logger *zap.Logger,
	delay time.Duration,
) *QuizEngine {
	if delay <= 0 {
		delay = DefaultFeedbackDelay
	}

	completed, err := progress.Load(ctx)
	if err != nil {
		logger.Error("failed to load progress", zap.Error(err))
		completed = entities.NewCompletedLevels()
	}

	e := &QuizEngine{
		machine:   NewMachine(),
		state:     InitialState(completed),
		riddles:   riddles,
		progress:  progress,
		scheduler: scheduler,
		notifier:  notifier,
		logger:    logger,
		delay:     delay,
		ctx:       ctx,
		now:       time.Now,
		run:       func(f func()) { go f() },
	}
	e.lastActivity = e.now()

	return e
}

func (e *QuizEngine) StartGame()            { e.intent(StartGame{}) }
func (e *QuizEngine) SelectLevel(level int) { e.intent(SelectLevel{Level: level}) }
func (e *QuizEngine) SubmitAnswer(opt int)  { e.intent(SubmitAnswer{Option: opt}) }
func (e *QuizEngine) GoToLevelList()        { e.intent(GoToLevelList{}) }
func (e *QuizEngine) RetryLevel()           { e.intent(RetryLevel{}) }
func (e *QuizEngine) NextLevel()            { e.intent(NextLevel{}) }

// Snapshot returns the current state.
func (e *QuizEngine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{State: e.state, Version: e.version}
}

// LastActivity returns the time of the last player intent.
func (e *QuizEngine) LastActivity() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastActivity
}

// Close cancels any outstanding fetch or timer. Events arriving afterwards are ignored.
func (e *QuizEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.cancelPendingLocked()
}

func (e *QuizEngine) intent(ev Event) {
	e.mu.Lock()
	e.lastActivity = e.now()
	e.mu.Unlock()

	e.Dispatch(ev)
}

// Dispatch applies one event. Effects that call back into the engine run after
// the state has been published.
func (e *QuizEngine) Dispatch(ev Event) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	next, effects := e.machine.Transition(e.state, ev)
	if len(effects) == 0 && sameState(e.state, next) {
		e.mu.Unlock()
		return
	}

	e.state = next
	e.version++
	snap := Snapshot{State: next, Version: e.version}
	jobs := e.applyLocked(effects)
	e.mu.Unlock()

	if e.notifier != nil {
		e.notifier.Render(snap)
	}
	for _, job := range jobs {
		job()
	}
}

// applyLocked handles timer and fetch bookkeeping and returns the work
// that must run outside the lock.
func (e *QuizEngine) applyLocked(effects []Effect) []func() {
	var jobs []func()

	for _, eff := range effects {
		switch x := eff.(type) {
		case CancelPending:
			e.cancelPendingLocked()

		case FetchRiddles:
			e.cancelPendingLocked()
			ctx, cancel := context.WithCancel(e.ctx)
			e.cancelFetch = cancel
			jobs = append(jobs, func() {
				e.run(func() {
					defer cancel()
					riddles := e.riddles.FetchRiddles(ctx, x.Level)
					if ctx.Err() != nil {
						return
					}
					e.Dispatch(RiddlesLoaded{AttemptID: x.AttemptID, Riddles: riddles})
				})
			})

		case ScheduleAdvance:
			if e.timer != nil {
				e.timer.Stop()
			}
			e.timer = e.scheduler.AfterFunc(e.delay, func() {
				e.Dispatch(FeedbackElapsed{SessionID: x.SessionID, Index: x.Index})
			})

		case SaveProgress:
			jobs = append(jobs, func() { e.saveProgress(x.Completed) })

		case Celebrate:
			if e.notifier != nil {
				jobs = append(jobs, func() { e.notifier.Celebrate(x.Level) })
			}
		}
	}

	return jobs
}

func (e *QuizEngine) cancelPendingLocked() {
	if e.cancelFetch != nil {
		e.cancelFetch()
		e.cancelFetch = nil
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *QuizEngine) saveProgress(completed entities.CompletedLevels) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(e.ctx), saveTimeout)
	defer cancel()

	if err := e.progress.Save(ctx, completed); err != nil {
		e.logger.Error("failed to save progress",
			zap.Ints("completed", completed.Levels()),
			zap.Error(err),
		)
		return
	}

	e.logger.Info("progress saved", zap.Int("completed_count", completed.Len()))
}

func sameState(a, b State) bool {
	return a.Screen == b.Screen &&
		a.Level == b.Level &&
		a.AttemptID == b.AttemptID &&
		a.Session == b.Session &&
		a.Result == b.Result &&
		a.Completed.Len() == b.Completed.Len()
}
