package session_test

import (
	"sync"
	"testing"

	"github.com/skolathu-cds/smart-travel-consultant/internal/model/travel"
	"github.com/skolathu-cds/smart-travel-consultant/internal/service/session"
)

func TestStoreCreateAssignsUniqueIDs(t *testing.T) {
	store := session.NewStore()

	a := store.Create()
	b := store.Create()

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty session ids")
	}
	if a.ID == b.ID {
		t.Fatalf("expected unique ids, both were %s", a.ID)
	}
}

func TestStoreDoCreatesOnFirstReference(t *testing.T) {
	store := session.NewStore()

	store.Do("client-chosen-id", func(s *travel.Session) {
		s.AppendTurn(travel.SpeakerUser, "hello")
	})

	snapshot, ok := store.Snapshot("client-chosen-id")
	if !ok {
		t.Fatal("expected session to exist after Do")
	}
	if len(snapshot.Turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(snapshot.Turns))
	}
}

func TestStoreDoRetainsMutations(t *testing.T) {
	store := session.NewStore()
	created := store.Create()

	store.Do(created.ID, func(s *travel.Session) {
		s.EnterCategory(travel.CategoryVisa)
		s.CollectedData["nationality"] = "Indian"
	})

	snapshot, _ := store.Snapshot(created.ID)
	if snapshot.ActiveCategory != travel.CategoryVisa {
		t.Fatalf("active category = %s, want visa", snapshot.ActiveCategory)
	}
	if snapshot.CollectedData["nationality"] != "Indian" {
		t.Fatalf("collected data not retained: %v", snapshot.CollectedData)
	}
}

func TestStoreDoSerializesPerSession(t *testing.T) {
	store := session.NewStore()
	const workers = 32

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Do("shared", func(s *travel.Session) {
				s.AppendTurn(travel.SpeakerUser, "turn")
			})
		}()
	}
	wg.Wait()

	snapshot, _ := store.Snapshot("shared")
	if len(snapshot.Turns) != workers {
		t.Fatalf("expected %d turns, got %d", workers, len(snapshot.Turns))
	}
}

func TestStoreConcurrentDistinctSessions(t *testing.T) {
	store := session.NewStore()

	var wg sync.WaitGroup
	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				store.Do(id, func(s *travel.Session) {
					s.AppendTurn(travel.SpeakerAssistant, "reply")
				})
			}(id)
		}
	}
	wg.Wait()

	for _, id := range ids {
		snapshot, ok := store.Snapshot(id)
		if !ok {
			t.Fatalf("session %s missing", id)
		}
		if len(snapshot.Turns) != 8 {
			t.Fatalf("session %s has %d turns, want 8", id, len(snapshot.Turns))
		}
	}
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := session.NewStore()
	created := store.Create()

	snapshot, _ := store.Snapshot(created.ID)
	snapshot.CollectedData["nationality"] = "tampered"
	snapshot.Turns = append(snapshot.Turns, travel.Turn{Speaker: travel.SpeakerUser, Content: "tampered"})

	fresh, _ := store.Snapshot(created.ID)
	if len(fresh.CollectedData) != 0 || len(fresh.Turns) != 0 {
		t.Fatal("snapshot mutation leaked into the store")
	}
}
