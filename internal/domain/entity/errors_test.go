package entity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/oksasatya/eventhub/internal/domain/entity"
)

func TestDomainErrorMatching(t *testing.T) {
	tk := newTicket(t)
	used, _ := tk.Use(t1)
	_, err := used.Use(t2)

	wrapped := fmt.Errorf("use ticket %s: %w", tk.ID(), err)
	if !errors.Is(wrapped, entity.ErrTicketUpdate) {
		t.Fatalf("expected ErrTicketUpdate through wrapping")
	}
	if errors.Is(wrapped, entity.ErrTicketCreate) {
		t.Fatalf("update error must not match create kind")
	}
	if errors.Is(wrapped, entity.CodeError(entity.CodeTicketNotValid)) {
		t.Fatalf("code mismatch must not match")
	}
	var de *entity.DomainError
	if !errors.As(wrapped, &de) || de.Kind.IsCreateKind() {
		t.Fatalf("expected update DomainError, got %v", de)
	}
}
