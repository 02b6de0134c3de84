// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/danielhkuo/deckboard/metrics"
	"github.com/danielhkuo/deckboard/models"
	"github.com/danielhkuo/deckboard/testutil"
)

func TestResolveOrCreateTab(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tabs := NewTabStore(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "u1")

	created, err := tabs.ResolveOrCreate(ctx, userID, "Scenes")
	if err != nil {
		t.Fatalf("ResolveOrCreate failed: %v", err)
	}

	again, err := tabs.ResolveOrCreate(ctx, userID, "Scenes")
	if err != nil {
		t.Fatalf("Second ResolveOrCreate failed: %v", err)
	}
	if created != again {
		t.Errorf("Expected same tab id, got %d and %d", created, again)
	}

	// Same name for another user is a different tab
	otherID := testutil.CreateTestUser(t, db, "u2")
	other, err := tabs.ResolveOrCreate(ctx, otherID, "Scenes")
	if err != nil {
		t.Fatalf("ResolveOrCreate for second user failed: %v", err)
	}
	if other == created {
		t.Error("Expected a separate tab per user")
	}

	if n := testutil.CountTabs(t, db, userID); n != 1 {
		t.Errorf("Expected 1 tab for u1, got %d", n)
	}
}

func TestResolveOrCreateUnknownUser(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := NewTabStore(db).ResolveOrCreate(context.Background(), 404, "Scenes")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLookupTabOtherUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	owner := testutil.CreateTestUser(t, db, "owner")
	intruder := testutil.CreateTestUser(t, db, "intruder")
	testutil.CreateTestTab(t, db, owner, "Private")

	_, err := NewTabStore(db).Lookup(context.Background(), intruder, "Private")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for another user's tab, got %v", err)
	}
}

// TestConcurrentTabCreation verifies that racing adds to an unseen tab name
// produce exactly one tab row and all succeed
func TestConcurrentTabCreation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := New(db)
	userID := testutil.CreateTestUser(t, db, "u1")

	const attempts = 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Buttons.Add(context.Background(), userID, "Fresh", models.ButtonSpec{Function: "switch_scene"})
			if err != nil {
				t.Errorf("Add failed: %v", err)
				return
			}
			successCount.Add(1)
		}()
	}
	wg.Wait()

	if successCount.Load() != attempts {
		t.Errorf("Expected %d successful adds, got %d", attempts, successCount.Load())
	}

	var tabCount int
	err := db.QueryRow(`SELECT COUNT(*) FROM tabs WHERE user_id = $1 AND name = $2`, userID, "Fresh").Scan(&tabCount)
	if err != nil {
		t.Fatalf("Failed to count tabs: %v", err)
	}
	if tabCount != 1 {
		t.Errorf("Expected exactly 1 tab row, got %d", tabCount)
	}

	if n := testutil.CountButtons(t, db, userID); n != attempts {
		t.Errorf("Expected %d buttons, got %d", attempts, n)
	}
}

// TestInsertConflictRereads drives the lost-race path directly: the row
// appears between lookup and insert
func TestInsertConflictRereads(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tabs := NewTabStore(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "u1")
	winner := testutil.CreateTestTab(t, db, userID, "Scenes")

	_, err := tabs.insert(ctx, userID, "Scenes")
	if !errors.Is(err, errConflictRetry) {
		t.Fatalf("Expected errConflictRetry from duplicate insert, got %v", err)
	}

	id, err := tabs.ResolveOrCreate(ctx, userID, "Scenes")
	if err != nil {
		t.Fatalf("ResolveOrCreate failed: %v", err)
	}
	if id != winner {
		t.Errorf("Expected winner's id %d, got %d", winner, id)
	}
}

func TestDeleteTabCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tabs := NewTabStore(db)
	userID := testutil.CreateTestUser(t, db, "u1")

	scenes := testutil.CreateTestTab(t, db, userID, "Scenes")
	testutil.AddTestButton(t, db, scenes, "switch_scene", "Go Live")
	testutil.AddTestButton(t, db, scenes, "switch_scene", "BRB")
	audio := testutil.CreateTestTab(t, db, userID, "Audio")
	testutil.AddTestButton(t, db, audio, "mute", "Mute")

	if err := tabs.Delete(context.Background(), userID, "Scenes"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if n := testutil.CountTabs(t, db, userID); n != 1 {
		t.Errorf("Expected 1 remaining tab, got %d", n)
	}
	if n := testutil.CountButtons(t, db, userID); n != 1 {
		t.Errorf("Expected 1 remaining button, got %d", n)
	}

	var orphans int
	db.QueryRow(`SELECT COUNT(*) FROM buttons WHERE tab_id = $1`, scenes).Scan(&orphans)
	if orphans != 0 {
		t.Errorf("Expected deleted tab's buttons gone, found %d", orphans)
	}
}

func TestDeleteTabNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tabs := NewTabStore(db)
	owner := testutil.CreateTestUser(t, db, "owner")
	other := testutil.CreateTestUser(t, db, "other")
	testutil.CreateTestTab(t, db, owner, "Scenes")

	testCases := []struct {
		name   string
		userID int64
		tab    string
	}{
		{"unknown tab", owner, "Nope"},
		{"another user's tab", other, "Scenes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tabs.Delete(context.Background(), tc.userID, tc.tab)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
		})
	}

	if n := testutil.CountTabs(t, db, owner); n != 1 {
		t.Errorf("Expected owner's tab untouched, got %d tabs", n)
	}
}

func TestPruneIfEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tabs := NewTabStore(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "u1")

	full := testutil.CreateTestTab(t, db, userID, "Full")
	testutil.AddTestButton(t, db, full, "switch_scene", "Go Live")
	empty := testutil.CreateTestTab(t, db, userID, "Empty")

	pruned, err := tabs.PruneIfEmpty(ctx, full, userID)
	if err != nil {
		t.Fatalf("PruneIfEmpty failed: %v", err)
	}
	if pruned {
		t.Error("Expected tab with buttons to survive")
	}

	// Wrong owner never prunes
	other := testutil.CreateTestUser(t, db, "u2")
	pruned, err = tabs.PruneIfEmpty(ctx, empty, other)
	if err != nil {
		t.Fatalf("PruneIfEmpty failed: %v", err)
	}
	if pruned {
		t.Error("Expected another user's empty tab to survive")
	}

	pruned, err = tabs.PruneIfEmpty(ctx, empty, userID)
	if err != nil {
		t.Fatalf("PruneIfEmpty failed: %v", err)
	}
	if !pruned {
		t.Error("Expected empty tab to be pruned")
	}

	if n := testutil.CountTabs(t, db, userID); n != 1 {
		t.Errorf("Expected 1 tab left, got %d", n)
	}
}

// TestConcurrentTabCreationRereadsWinner races many adds against the same
// unseen tab names over several connections, so some inserts lose the
// uniqueness race and must re-read the winning row
func TestConcurrentTabCreationRereadsWinner(t *testing.T) {
	db := testutil.SetupFileTestDB(t)
	st := New(db)
	userID := testutil.CreateTestUser(t, db, "u1")

	const (
		maxRounds  = 5
		tabsPerRun = 20
		perTab     = 10
	)
	before := promtest.ToFloat64(metrics.TabConflicts)

	var errCount atomic.Int32
	rounds := 0
	for rounds < maxRounds && promtest.ToFloat64(metrics.TabConflicts) == before {
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < tabsPerRun; i++ {
			name := fmt.Sprintf("Round%d-Tab%d", rounds, i)
			for j := 0; j < perTab; j++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					if _, err := st.Buttons.Add(context.Background(), userID, name, models.ButtonSpec{Function: "switch_scene"}); err != nil {
						t.Errorf("Add to %q failed: %v", name, err)
						errCount.Add(1)
					}
				}()
			}
		}
		close(start)
		wg.Wait()
		rounds++
	}

	if errCount.Load() != 0 {
		t.Fatalf("Expected no failed adds, got %d", errCount.Load())
	}
	if promtest.ToFloat64(metrics.TabConflicts) == before {
		t.Fatalf("Expected at least one tab insert to lose the race in %d rounds", rounds)
	}

	if n := testutil.CountTabs(t, db, userID); n != rounds*tabsPerRun {
		t.Errorf("Expected %d tabs, got %d", rounds*tabsPerRun, n)
	}
	if n := testutil.CountButtons(t, db, userID); n != rounds*tabsPerRun*perTab {
		t.Errorf("Expected %d buttons, got %d", rounds*tabsPerRun*perTab, n)
	}
}
