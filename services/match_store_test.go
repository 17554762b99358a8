package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"livescore-service/models"
)

func storeTestMatches() []models.Match {
	kickoff := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	return []models.Match{
		{ID: 3, HomeTeam: "Inter", AwayTeam: "AC Milan", KickoffTime: kickoff, Status: models.StatusLive, Events: []models.MatchEvent{}},
		{ID: 1, HomeTeam: "Arsenal", AwayTeam: "Chelsea", KickoffTime: kickoff, Status: models.StatusLive, Events: []models.MatchEvent{}},
		{ID: 2, HomeTeam: "Lyon", AwayTeam: "Nice", KickoffTime: kickoff, Status: models.StatusScheduled, Events: []models.MatchEvent{}},
	}
}

func TestMemoryStoreListAscendingOrder(t *testing.T) {
	store := NewMemoryStore(storeTestMatches())

	matches := store.List()
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(matches))
	}
	for i, expected := range []int{1, 2, 3} {
		if matches[i].ID != expected {
			t.Errorf("Expected match %d at position %d, got %d", expected, i, matches[i].ID)
		}
	}
}

func TestMemoryStoreGetUnknownID(t *testing.T) {
	store := NewMemoryStore(storeTestMatches())

	_, err := store.Get(9999)
	if !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("Expected ErrMatchNotFound, got %v", err)
	}
}

func TestMemoryStoreReadsAreCopies(t *testing.T) {
	store := NewMemoryStore(storeTestMatches())

	m, err := store.Get(1)
	if err != nil {
		t.Fatalf("Expected match 1, got error %v", err)
	}
	m.HomeScore = 99
	m.Events = append(m.Events, models.NewEvent(1, "Arsenal", "Saka", models.EventGoal))

	fresh, _ := store.Get(1)
	if fresh.HomeScore != 0 {
		t.Errorf("Expected stored score untouched, got %d", fresh.HomeScore)
	}
	if len(fresh.Events) != 0 {
		t.Errorf("Expected stored events untouched, got %d", len(fresh.Events))
	}
}

func TestMemoryStoreUpdateCommitsAtomically(t *testing.T) {
	store := NewMemoryStore(storeTestMatches())

	err := store.Update(1, func(m *models.Match) error {
		m.ApplyEvent(models.NewEvent(10, "Arsenal", "Saka", models.EventGoal))
		return nil
	})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}

	m, _ := store.Get(1)
	if m.HomeScore != 1 {
		t.Errorf("Expected home score 1, got %d", m.HomeScore)
	}
	if len(m.Events) != 1 {
		t.Errorf("Expected 1 event, got %d", len(m.Events))
	}
}

func TestMemoryStoreUpdateRollsBackOnError(t *testing.T) {
	store := NewMemoryStore(storeTestMatches())

	wantErr := errors.New("generation failed")
	err := store.Update(1, func(m *models.Match) error {
		m.ApplyEvent(models.NewEvent(10, "Arsenal", "Saka", models.EventGoal))
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Expected update to propagate error, got %v", err)
	}

	m, _ := store.Get(1)
	if m.HomeScore != 0 || len(m.Events) != 0 {
		t.Errorf("Expected no partial update, got score %d with %d events", m.HomeScore, len(m.Events))
	}
}

func TestMemoryStoreUpdateUnknownID(t *testing.T) {
	store := NewMemoryStore(storeTestMatches())

	err := store.Update(9999, func(m *models.Match) error { return nil })
	if !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("Expected ErrMatchNotFound, got %v", err)
	}
}

func TestMemoryStoreConcurrentUpdates(t *testing.T) {
	store := NewMemoryStore(storeTestMatches())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(minute int) {
			defer wg.Done()
			store.Update(1, func(m *models.Match) error {
				m.ApplyEvent(models.NewEvent(minute%90, "Arsenal", "Saka", models.EventGoal))
				return nil
			})
		}(i)
	}
	wg.Wait()

	m, _ := store.Get(1)
	if len(m.Events) != 50 {
		t.Errorf("Expected 50 events after concurrent updates, got %d", len(m.Events))
	}
	if m.HomeScore != 50 {
		t.Errorf("Expected home score 50, got %d", m.HomeScore)
	}
}

// failingRepo 提交永远失败的仓库
type failingRepo struct {
	loaded []models.Match
}

func (r *failingRepo) LoadAll() ([]models.Match, error) {
	return r.loaded, nil
}

func (r *failingRepo) SaveMatch(m models.Match, newEvents []models.MatchEvent, firstSeq int) error {
	return fmt.Errorf("connection refused")
}

func TestPersistentStoreCommitFailureSurfaces(t *testing.T) {
	store, err := NewPersistentStore(&failingRepo{loaded: storeTestMatches()})
	if err != nil {
		t.Fatalf("Expected store to build, got %v", err)
	}

	err = store.Update(1, func(m *models.Match) error {
		m.ApplyEvent(models.NewEvent(10, "Arsenal", "Saka", models.EventGoal))
		return nil
	})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("Expected ErrStoreUnavailable, got %v", err)
	}

	// 落库失败的变更对读取方不可见
	m, _ := store.Get(1)
	if m.HomeScore != 0 || len(m.Events) != 0 {
		t.Errorf("Expected failed commit to be invisible, got score %d with %d events", m.HomeScore, len(m.Events))
	}
}

// recordingRepo 记录提交内容的仓库
type recordingRepo struct {
	loaded   []models.Match
	saved    []models.MatchEvent
	firstSeq int
}

func (r *recordingRepo) LoadAll() ([]models.Match, error) {
	return r.loaded, nil
}

func (r *recordingRepo) SaveMatch(m models.Match, newEvents []models.MatchEvent, firstSeq int) error {
	r.saved = append(r.saved, newEvents...)
	r.firstSeq = firstSeq
	return nil
}

func TestPersistentStoreWritesThroughNewEventsOnly(t *testing.T) {
	matches := storeTestMatches()
	matches[2].Events = []models.MatchEvent{
		models.NewEvent(5, "Lyon", "Lacazette", models.EventCorner),
	}

	repo := &recordingRepo{loaded: matches}
	store, err := NewPersistentStore(repo)
	if err != nil {
		t.Fatalf("Expected store to build, got %v", err)
	}

	err = store.Update(2, func(m *models.Match) error {
		m.ApplyEvent(models.NewEvent(10, "Lyon", "Cherki", models.EventGoal))
		return nil
	})
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("Expected only the new event to be persisted, got %d", len(repo.saved))
	}
	if repo.saved[0].Player != "Cherki" {
		t.Errorf("Expected persisted event for Cherki, got '%s'", repo.saved[0].Player)
	}
	if repo.firstSeq != 1 {
		t.Errorf("Expected first sequence 1, got %d", repo.firstSeq)
	}
}
