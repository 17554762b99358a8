package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"livescore-service/models"
)

// fakeClock 可手动推进的时钟源
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newSimFixture(t *testing.T, probability float64) (*Simulator, *MemoryStore, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)}
	store := NewMemoryStore([]models.Match{
		{
			ID:          1,
			HomeTeam:    "Arsenal",
			AwayTeam:    "Chelsea",
			HomeRoster:  []string{"Saka", "Rice"},
			AwayRoster:  []string{"Palmer", "Jackson"},
			KickoffTime: clock.Now().Add(-30 * time.Minute),
			Status:      models.StatusLive,
			Events:      []models.MatchEvent{},
		},
		{
			ID:          2,
			HomeTeam:    "Bayern Munich",
			AwayTeam:    "Borussia Dortmund",
			KickoffTime: clock.Now().Add(-5 * time.Hour),
			Status:      models.StatusFinished,
			Events:      []models.MatchEvent{},
		},
	})

	gen := NewEventGenerator(NewRand(1), probability)
	sim := NewSimulator(store, gen, 5*time.Second, clock.Now, nil)
	return sim, store, clock
}

func TestRunDueCyclesGeneratesOncePerWindow(t *testing.T) {
	sim, store, clock := newSimFixture(t, 1.0)

	if err := sim.RunDueCycles(); err != nil {
		t.Fatalf("Expected cycle to succeed, got %v", err)
	}
	if err := sim.RunDueCycles(); err != nil {
		t.Fatalf("Expected cycle to succeed, got %v", err)
	}

	m, _ := store.Get(1)
	if len(m.Events) != 1 {
		t.Fatalf("Expected 1 event within one window, got %d", len(m.Events))
	}

	clock.Advance(5 * time.Second)
	sim.RunDueCycles()

	m, _ = store.Get(1)
	if len(m.Events) != 2 {
		t.Errorf("Expected 2 events after window elapsed, got %d", len(m.Events))
	}
}

func TestConcurrentPullsDoNotDoubleGenerate(t *testing.T) {
	sim, store, _ := newSimFixture(t, 1.0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sim.RunDueCycles()
		}()
	}
	wg.Wait()

	m, _ := store.Get(1)
	if len(m.Events) != 1 {
		t.Errorf("Expected 1 event from 20 concurrent pulls, got %d", len(m.Events))
	}
}

func TestFinishedMatchStaysFinished(t *testing.T) {
	sim, store, clock := newSimFixture(t, 1.0)

	for i := 0; i < 30; i++ {
		clock.Advance(5 * time.Minute)
		sim.RunDueCycles()

		m, _ := store.Get(1)
		if m.Status == models.StatusFinished {
			break
		}
	}

	m, _ := store.Get(1)
	if m.Status != models.StatusFinished {
		t.Fatalf("Expected match to finish after 90 minutes, got %s", m.Status)
	}
	eventCount := len(m.Events)

	// 完赛后继续推进, 状态和事件都不再变化
	for i := 0; i < 5; i++ {
		clock.Advance(5 * time.Minute)
		sim.RunDueCycles()
	}

	m, _ = store.Get(1)
	if m.Status != models.StatusFinished {
		t.Errorf("Expected finished to be terminal, got %s", m.Status)
	}
	if len(m.Events) != eventCount {
		t.Errorf("Expected event count %d unchanged after finish, got %d", eventCount, len(m.Events))
	}
}

// collectingPublisher 收集发布事件的桩
type collectingPublisher struct {
	mu     sync.Mutex
	events []models.MatchEvent
}

func (p *collectingPublisher) PublishEvent(matchID int, event models.MatchEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func TestGeneratedEventsArePublished(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)}
	store := NewMemoryStore([]models.Match{
		{
			ID:          1,
			HomeTeam:    "Inter",
			AwayTeam:    "AC Milan",
			HomeRoster:  []string{"Martínez"},
			AwayRoster:  []string{"Leão"},
			KickoffTime: clock.Now().Add(-10 * time.Minute),
			Status:      models.StatusLive,
			Events:      []models.MatchEvent{},
		},
	})

	publisher := &collectingPublisher{}
	sim := NewSimulator(store, NewEventGenerator(NewRand(1), 1.0), time.Second, clock.Now, publisher)

	sim.RunDueCycles()
	clock.Advance(time.Second)
	sim.RunDueCycles()

	if len(publisher.events) != 2 {
		t.Errorf("Expected 2 published events, got %d", len(publisher.events))
	}
}

func TestStartStopDrivesGenerationInBackground(t *testing.T) {
	store := NewMemoryStore([]models.Match{
		{
			ID:          1,
			HomeTeam:    "Arsenal",
			AwayTeam:    "Chelsea",
			HomeRoster:  []string{"Saka"},
			AwayRoster:  []string{"Palmer"},
			KickoffTime: time.Now().UTC().Add(-30 * time.Minute),
			Status:      models.StatusLive,
			Events:      []models.MatchEvent{},
		},
	})

	sim := NewSimulator(store, NewEventGenerator(NewRand(1), 1.0), 10*time.Millisecond, nil, nil)
	sim.Start()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m, _ := store.Get(1)
		if len(m.Events) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	sim.Stop()

	m, _ := store.Get(1)
	if len(m.Events) == 0 {
		t.Error("Expected background ticks to generate events without any consumer")
	}
}

func TestFailedCommitKeepsWindowOpen(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)}
	store, err := NewPersistentStore(&failingRepo{loaded: []models.Match{
		{
			ID:          1,
			HomeTeam:    "Arsenal",
			AwayTeam:    "Chelsea",
			HomeRoster:  []string{"Saka"},
			AwayRoster:  []string{"Palmer"},
			KickoffTime: clock.Now().Add(-30 * time.Minute),
			Status:      models.StatusLive,
			Events:      []models.MatchEvent{},
		},
	}})
	if err != nil {
		t.Fatalf("Expected store to build, got %v", err)
	}

	sim := NewSimulator(store, NewEventGenerator(NewRand(1), 1.0), 5*time.Second, clock.Now, nil)

	// 提交失败不占用生成窗口, 同一窗口内的后续调用重试并再次上报
	for i := 0; i < 2; i++ {
		if err := sim.RunDueCycles(); !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("Expected ErrStoreUnavailable on call %d, got %v", i, err)
		}
	}
}

func TestStopIsIdempotent(t *testing.T) {
	sim, _, _ := newSimFixture(t, 0.0)

	sim.Start()
	sim.Stop()
	// 重复 Stop 不 panic
	sim.Stop()
}

func TestStopWithoutStartReturns(t *testing.T) {
	sim, _, _ := newSimFixture(t, 0.0)

	done := make(chan struct{})
	go func() {
		sim.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Stop without Start to return immediately")
	}
}
