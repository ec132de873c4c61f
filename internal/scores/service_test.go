package scores

import (
	"context"
	"errors"
	"testing"
)

func TestServiceRecordAssignsIDAndTimestamp(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	rec, err := svc.Record(ctx, " ATS ", 72.5, map[string]any{"tfidf_similarity": 0.61})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected generated ID")
	}
	if rec.Kind != KindATS {
		t.Fatalf("expected normalized kind %q, got %q", KindATS, rec.Kind)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt set")
	}
	if len(rec.Detail) == 0 {
		t.Fatal("expected detail marshaled")
	}

	got, err := svc.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Score != 72.5 {
		t.Fatalf("expected score 72.5, got %v", got.Score)
	}
}

func TestServiceRecordRejectsUnknownKind(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Record(context.Background(), "essay", 50, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceListLimits(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		if _, err := svc.Record(ctx, KindInterview, float64(i), nil); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	out, err := svc.List(ctx, "", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != defaultListLimit {
		t.Fatalf("expected default limit %d, got %d", defaultListLimit, len(out))
	}

	if _, err := svc.List(ctx, "essay", 5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
