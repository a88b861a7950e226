package server

import (
	"context"
	"errors"
	"testing"

	"github.com/zipcheck/rentcheck/internal/checklist"
	"github.com/zipcheck/rentcheck/internal/database"
	"github.com/zipcheck/rentcheck/internal/migrations"
)

func testStore(t *testing.T) *DocStore {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := migrations.Run(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewDocStore(db)
}

func TestSessionRoundtrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	doc, err := store.CreateSession(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("expected an id")
	}

	doc.State.SetAnswer("location", checklist.Answer{Kind: checklist.InputFreeText, Text: "서울"})
	doc.State.Step = 1
	doc.Safety.Registration = checklist.SafetySelected
	doc.Costs.Deposit = "1,000"
	if err := store.SaveSession(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Session(ctx, doc.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.State.Step != 1 {
		t.Errorf("expected step 1, got %d", got.State.Step)
	}
	if a := got.State.Answers["location"]; a.Text != "서울" {
		t.Errorf("expected stored answer, got %+v", a)
	}
	if got.Safety.Registration != checklist.SafetySelected {
		t.Errorf("expected safety toggle persisted, got %+v", got.Safety)
	}
	if got.Costs.Deposit != "1,000" {
		t.Errorf("expected cost inputs persisted, got %+v", got.Costs)
	}
	if got.UpdatedAt == "" || got.CreatedAt == "" {
		t.Error("expected timestamps")
	}
}

func TestSessionNotFoundError(t *testing.T) {
	store := testStore(t)

	_, err := store.Session(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionAnswersNeverNil(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	doc, err := store.CreateSession(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Session(ctx, doc.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.State.Answers == nil {
		t.Fatal("expected a non-nil answers map")
	}
	got.State.SetAnswer("location", checklist.Answer{Kind: checklist.InputFreeText, Text: "x"})
}
