package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	"github.com/oksasatya/eventhub/internal/domain/shared"
)

var (
	t0 = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
	t2 = t0.Add(2 * time.Hour)
)

func fixedClock() shared.Clock { return shared.NewFixedClock(t0) }

func expectCode(t *testing.T, err error, kind *entity.DomainError, code entity.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %s, got nil", code)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected kind %s, got %v", kind.Kind, err)
	}
	if !errors.Is(err, entity.CodeError(code)) {
		var de *entity.DomainError
		errors.As(err, &de)
		t.Fatalf("expected code %s, got %+v", code, de)
	}
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
