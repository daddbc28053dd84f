package history

import (
	"context"
	"testing"
	"time"
)

func TestMemStoreRecordAndList(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	cost := 17.0
	id, err := store.Record(ctx, Run{
		Label:       "bridge",
		Strategy:    "BestFirst",
		NbExplored:  12,
		NbSolutions: 1,
		BestCost:    &cost,
		Duration:    5 * time.Millisecond,
		RecordedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}

	if _, err := store.Record(ctx, Run{Label: "queens", Strategy: "DepthFirst", RecordedAt: time.Now()}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(all))
	}

	bridgeOnly, err := store.List(ctx, "bridge")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bridgeOnly) != 1 {
		t.Fatalf("expected 1 run, got %d", len(bridgeOnly))
	}
	if bridgeOnly[0].Strategy != "BestFirst" {
		t.Errorf("expected strategy BestFirst, got %q", bridgeOnly[0].Strategy)
	}
	if bridgeOnly[0].BestCost == nil {
		t.Fatal("expected BestCost to be set")
	}
	if *bridgeOnly[0].BestCost != 17.0 {
		t.Errorf("expected BestCost 17.0, got %g", *bridgeOnly[0].BestCost)
	}
}

func TestMemStoreListMostRecentFirst(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	base := time.Now()
	if _, err := store.Record(ctx, Run{Label: "a", RecordedAt: base}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if _, err := store.Record(ctx, Run{Label: "a", RecordedAt: base.Add(time.Second)}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	runs, err := store.List(ctx, "a")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != 2 {
		t.Errorf("expected most recent run first (id 2), got %d", runs[0].ID)
	}
	if runs[1].ID != 1 {
		t.Errorf("expected second entry id 1, got %d", runs[1].ID)
	}
}
