package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Digz0/WordFreq/internal/rarity"
)

func TestRunPreservesInputOrder(t *testing.T) {
	paths := []string{"a.txt", "b.txt", "c.txt"}

	var called int32
	results := Run(context.Background(), paths, 2, func(path string) (*rarity.Report, error) {
		atomic.AddInt32(&called, 1)
		if path == "b.txt" {
			return nil, errors.New("test error")
		}
		return &rarity.Report{Average: 4.0}, nil
	})

	if called != int32(len(paths)) {
		t.Fatalf("expected %d calls, got %d", len(paths), called)
	}
	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Fatalf("result %d out of order: %+v", i, r)
		}
	}
	if results[1].Err == nil {
		t.Fatal("expected error recorded for b.txt")
	}
	if results[0].Report == nil || results[2].Report == nil {
		t.Fatal("expected reports for the successful files")
	}
}

func TestRunEmptyAndNil(t *testing.T) {
	if got := Run(context.Background(), nil, 2, nil); got != nil {
		t.Fatalf("expected nil results, got %v", got)
	}
	if got := Run(context.Background(), []string{"a.txt"}, 2, nil); got != nil {
		t.Fatalf("expected nil results for nil func, got %v", got)
	}
}

func TestRunHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, []string{"a.txt", "b.txt"}, 1, func(path string) (*rarity.Report, error) {
		return &rarity.Report{}, nil
	})
	for _, r := range results {
		if r.Err == nil {
			t.Fatalf("expected context error for %s", r.Path)
		}
	}
}
