package application

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

func TestAttendeeService_RegisterOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendeeService(newFakeAttendees(), nil, fixed(), nil, nil)

	a, err := svc.Register(ctx, RegisterAttendeeInput{EventID: "e", UserID: "u"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !a.Status().IsRegistered() || !a.RegistrationDate().Equal(now) {
		t.Fatalf("unexpected attendee %+v", a.Props())
	}
	if _, err := svc.Register(ctx, RegisterAttendeeInput{EventID: "e", UserID: "u"}); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterAttendeeInput{EventID: "e2", UserID: "u"}); err != nil {
		t.Fatalf("other event should register: %v", err)
	}
}

func TestAttendeeService_CheckInAndCancel(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendeeService(newFakeAttendees(), nil, fixed(), nil, nil)
	a, _ := svc.Register(ctx, RegisterAttendeeInput{EventID: "e", UserID: "u"})

	checked, err := svc.CheckIn(ctx, a.ID())
	if err != nil || !checked.Status().IsAttended() {
		t.Fatalf("check in: %v %+v", err, checked.Props())
	}
	if _, err := svc.Cancel(ctx, a.ID()); !errors.Is(err, entity.CodeError(entity.CodeAttendeeAlreadyCheckedIn)) {
		t.Fatalf("expected already checked in, got %v", err)
	}
}

func TestAttendeeService_ChangeStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendeeService(newFakeAttendees(), nil, fixed(), nil, nil)
	a, _ := svc.Register(ctx, RegisterAttendeeInput{EventID: "e", UserID: "u"})

	if _, err := svc.ChangeStatus(ctx, a.ID(), "maybe"); !errors.Is(err, vo.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	confirmed, err := svc.ChangeStatus(ctx, a.ID(), "confirmed")
	if err != nil || !confirmed.Status().IsConfirmed() {
		t.Fatalf("change status: %v %s", err, confirmed.Status())
	}

	page, _ := svc.ListByEvent(ctx, "e", vo.AttendanceStatusConfirmed(), repo.ListOptions{})
	if page.Total != 1 {
		t.Fatalf("expected one confirmed attendee, got %d", page.Total)
	}
}

func TestAttendeeService_AssignTicket(t *testing.T) {
	ctx := context.Background()
	tickets := newFakeTickets()
	ticketSvc := NewTicketService(tickets, nil, fixed(), nil, nil)
	own, _ := ticketSvc.Issue(ctx, IssueTicketInput{UserID: "u", EventID: "e", PaymentID: "p1", TicketType: "GA"})
	other, _ := ticketSvc.Issue(ctx, IssueTicketInput{UserID: "someone", EventID: "e", PaymentID: "p2", TicketType: "GA"})

	svc := NewAttendeeService(newFakeAttendees(), tickets, fixed(), nil, nil)
	a, _ := svc.Register(ctx, RegisterAttendeeInput{EventID: "e", UserID: "u"})

	if _, err := svc.AssignTicket(ctx, a.ID(), other.ID()); !errors.Is(err, ErrTicketMismatch) {
		t.Fatalf("expected ErrTicketMismatch, got %v", err)
	}
	if _, err := svc.AssignTicket(ctx, a.ID(), "nope"); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
	assigned, err := svc.AssignTicket(ctx, a.ID(), own.ID())
	if err != nil || assigned.TicketID() != own.ID() {
		t.Fatalf("assign: %v %+v", err, assigned.Props())
	}
}

func TestAttendeeService_AddNotes(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendeeService(newFakeAttendees(), nil, fixed(), nil, nil)
	a, _ := svc.Register(ctx, RegisterAttendeeInput{EventID: "e", UserID: "u", Notes: "first"})
	a, err := svc.AddNotes(ctx, a.ID(), "second")
	if err != nil || a.Notes() != "first\nsecond" {
		t.Fatalf("add notes: %v %q", err, a.Notes())
	}
}
