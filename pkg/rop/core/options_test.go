package core

import (
	"context"
	"testing"
)

func TestGetWorkerMaxCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := GetWorkerMaxCount(ctx, 5); got != 5 {
		t.Fatalf("expected default 5, got %d", got)
	}
	if got := GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 5); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 5); got != 5 {
		t.Fatalf("expected default for non-positive limit, got %d", got)
	}
}
