package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

// makeRiddles returns a valid level set whose correct answer is always option 0.
func makeRiddles(level int) []entities.Riddle {
	riddles := make([]entities.Riddle, entities.RiddlesPerLevel)
	for i := range riddles {
		riddles[i] = entities.Riddle{
			ID:            fmt.Sprintf("%d-%d", level, i),
			Question:      fmt.Sprintf("riddle %d of level %d", i, level),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 0,
			Explanation:   "because",
		}
	}
	return riddles
}

type fakeProvider struct {
	mu     sync.Mutex
	levels []int
}

func (p *fakeProvider) FetchRiddles(_ context.Context, level int) []entities.Riddle {
	p.mu.Lock()
	p.levels = append(p.levels, level)
	p.mu.Unlock()
	return makeRiddles(level)
}

func (p *fakeProvider) calls() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.levels...)
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// fakeScheduler keeps callbacks until the test fires them.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(_ time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &fakeTimer{f: f}
	s.timers = append(s.timers, t)
	return t
}

// fire runs every pending callback and returns how many ran.
func (s *fakeScheduler) fire() int {
	s.mu.Lock()
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped {
			t.stopped = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}

// fireAll runs every callback ever scheduled, including stopped ones.
func (s *fakeScheduler) fireAll() {
	s.mu.Lock()
	all := append([]*fakeTimer(nil), s.timers...)
	s.mu.Unlock()

	for _, t := range all {
		t.f()
	}
}

func (s *fakeScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type fakeNotifier struct {
	mu         sync.Mutex
	snapshots  []Snapshot
	celebrated []int
}

func (n *fakeNotifier) Render(snap Snapshot) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.snapshots = append(n.snapshots, snap)
}

func (n *fakeNotifier) Celebrate(level int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.celebrated = append(n.celebrated, level)
}

func (n *fakeNotifier) screens() []entities.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]entities.Screen, 0, len(n.snapshots))
	for _, s := range n.snapshots {
		out = append(out, s.Screen)
	}
	return out
}

type fakeProgress struct {
	mu      sync.Mutex
	stored  entities.CompletedLevels
	loadErr error
	saveErr error
	saves   []entities.CompletedLevels
}

func (p *fakeProgress) Load(context.Context) (entities.CompletedLevels, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loadErr != nil {
		return entities.CompletedLevels{}, p.loadErr
	}
	return p.stored, nil
}

func (p *fakeProgress) Save(_ context.Context, completed entities.CompletedLevels) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.saves = append(p.saves, completed)
	if p.saveErr != nil {
		return p.saveErr
	}
	p.stored = completed
	return nil
}

type fakeRepository struct {
	values map[string]entities.CompletedLevels
	err    error
}

func (r *fakeRepository) Get(_ context.Context, key string) (entities.CompletedLevels, error) {
	if r.err != nil {
		return entities.CompletedLevels{}, r.err
	}
	v, ok := r.values[key]
	if !ok {
		return entities.CompletedLevels{}, entities.ErrProgressNotFound
	}
	return v, nil
}

func (r *fakeRepository) Replace(_ context.Context, key string, completed entities.CompletedLevels) error {
	if r.err != nil {
		return r.err
	}
	if r.values == nil {
		r.values = make(map[string]entities.CompletedLevels)
	}
	r.values[key] = completed
	return nil
}

type fakeLLM struct {
	response string
	err      error

	system string
	user   string
}

func (l *fakeLLM) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	l.system = systemPrompt
	l.user = userPrompt
	return l.response, l.err
}
