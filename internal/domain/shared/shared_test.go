package shared

import (
	"regexp"
	"testing"
	"time"
)

func TestFixedClock(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, loc)
	c := NewFixedClock(at)
	if !c.Now().Equal(at) {
		t.Fatalf("expected %v, got %v", at, c.Now())
	}
	if c.Now().Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", c.Now().Location())
	}
}

func TestSequenceIDGenerator(t *testing.T) {
	g := NewSequenceIDGenerator("pay")
	if got := g.NewID(); got != "pay-1" {
		t.Fatalf("expected pay-1, got %s", got)
	}
	if got := g.NewID(); got != "pay-2" {
		t.Fatalf("expected pay-2, got %s", got)
	}
}

func TestBase36CodeGenerator(t *testing.T) {
	re := regexp.MustCompile(`^[0-9A-Z]{8}$`)
	g := NewBase36CodeGenerator()
	for i := 0; i < 50; i++ {
		code, err := g.NewCode(8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !re.MatchString(code) {
			t.Fatalf("code %q does not match %s", code, re)
		}
	}
	if _, err := g.NewCode(0); err == nil {
		t.Fatalf("expected error for zero length")
	}
}

func TestDefaults(t *testing.T) {
	if ClockOrSystem(nil) == nil {
		t.Fatalf("expected system clock")
	}
	if IDsOrUUID(nil).NewID() == "" {
		t.Fatalf("expected uuid")
	}
	if _, err := CodesOrBase36(nil).NewCode(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
