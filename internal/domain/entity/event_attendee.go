package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/oksasatya/eventhub/internal/domain/shared"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

// EventAttendee is a user's registration to an event.
type EventAttendee struct {
	Base
	eventID          string
	userID           string
	status           vo.AttendanceStatus
	registrationDate time.Time
	checkedIn        bool
	checkedInDate    *time.Time
	ticketID         string
	notes            string
}

// EventAttendeeProps is the plain-data projection of an EventAttendee.
type EventAttendeeProps struct {
	BaseProps
	EventID          string              `json:"event_id"`
	UserID           string              `json:"user_id"`
	Status           vo.AttendanceStatus `json:"status"`
	RegistrationDate time.Time           `json:"registration_date"`
	CheckedIn        bool                `json:"checked_in"`
	CheckedInDate    *time.Time          `json:"checked_in_date,omitempty"`
	TicketID         string              `json:"ticket_id,omitempty"`
	Notes            string              `json:"notes,omitempty"`
}

// CreateEventAttendeeProps is the untrusted input accepted by CreateEventAttendee.
type CreateEventAttendeeProps struct {
	ID               string
	EventID          string
	UserID           string
	Status           string
	RegistrationDate time.Time
	TicketID         string
	Notes            string
}

// CreateEventAttendee validates props and returns a REGISTERED attendee.
// RegistrationDate defaults to the clock's now.
func CreateEventAttendee(props CreateEventAttendeeProps, clk shared.Clock, ids shared.IDGenerator) (EventAttendee, error) {
	eventID := strings.TrimSpace(props.EventID)
	if eventID == "" {
		return EventAttendee{}, newError(KindEventAttendeeCreate, CodeAttendeeEventRequired, "event id is required")
	}
	userID := strings.TrimSpace(props.UserID)
	if userID == "" {
		return EventAttendee{}, newError(KindEventAttendeeCreate, CodeAttendeeUserRequired, "user id is required")
	}
	status := vo.AttendanceStatusRegistered()
	if strings.TrimSpace(props.Status) != "" {
		s, err := vo.NewAttendanceStatus(props.Status)
		if err != nil {
			return EventAttendee{}, wrapError(KindEventAttendeeCreate, CodeAttendeeInvalidStatus, err.Error(), err)
		}
		status = s
	}

	now := shared.ClockOrSystem(clk).Now()
	registered := props.RegistrationDate
	if registered.IsZero() {
		registered = now
	}
	id := strings.TrimSpace(props.ID)
	if id == "" {
		id = shared.IDsOrUUID(ids).NewID()
	}
	return EventAttendee{
		Base:             newBase(id, now),
		eventID:          eventID,
		userID:           userID,
		status:           status,
		registrationDate: registered,
		ticketID:         strings.TrimSpace(props.TicketID),
		notes:            strings.TrimSpace(props.Notes),
	}, nil
}

// ReconstituteEventAttendee rebuilds an attendee from trusted storage.
func ReconstituteEventAttendee(p EventAttendeeProps) EventAttendee {
	return EventAttendee{
		Base:             baseFromProps(p.BaseProps),
		eventID:          p.EventID,
		userID:           p.UserID,
		status:           p.Status,
		registrationDate: p.RegistrationDate,
		checkedIn:        p.CheckedIn,
		checkedInDate:    copyTime(p.CheckedInDate),
		ticketID:         p.TicketID,
		notes:            p.Notes,
	}
}

func (a EventAttendee) Props() EventAttendeeProps {
	return EventAttendeeProps{
		BaseProps:        a.baseProps(),
		EventID:          a.eventID,
		UserID:           a.userID,
		Status:           a.status,
		RegistrationDate: a.registrationDate,
		CheckedIn:        a.checkedIn,
		CheckedInDate:    copyTime(a.checkedInDate),
		TicketID:         a.ticketID,
		Notes:            a.notes,
	}
}

func (a EventAttendee) EventID() string             { return a.eventID }
func (a EventAttendee) UserID() string              { return a.userID }
func (a EventAttendee) Status() vo.AttendanceStatus { return a.status }
func (a EventAttendee) RegistrationDate() time.Time { return a.registrationDate }
func (a EventAttendee) CheckedIn() bool             { return a.checkedIn }
func (a EventAttendee) CheckedInDate() *time.Time   { return copyTime(a.checkedInDate) }
func (a EventAttendee) TicketID() string            { return a.ticketID }
func (a EventAttendee) Notes() string               { return a.notes }

// CheckIn marks attendance. Requires REGISTERED or CONFIRMED and no prior check-in.
func (a EventAttendee) CheckIn(at time.Time) (EventAttendee, error) {
	if a.checkedIn {
		return EventAttendee{}, newError(KindEventAttendeeUpdate, CodeAttendeeAlreadyCheckedIn, "attendee already checked in")
	}
	if !a.status.IsOpen() {
		return EventAttendee{}, newError(KindEventAttendeeUpdate, CodeAttendeeStatusDisallowsOp,
			fmt.Sprintf("cannot check in attendee with status %s", a.status))
	}
	next := a.next(at)
	next.checkedIn = true
	checked := at
	next.checkedInDate = &checked
	next.status = vo.AttendanceStatusAttended()
	return next, nil
}

// ChangeStatus sets status without further guards; the same status is a no-op.
func (a EventAttendee) ChangeStatus(status vo.AttendanceStatus, at time.Time) (EventAttendee, error) {
	if status.IsZero() {
		return EventAttendee{}, newError(KindEventAttendeeUpdate, CodeAttendeeInvalidStatus, "status is required")
	}
	if a.status.Equals(status) {
		return a, nil
	}
	next := a.next(at)
	next.status = status
	return next, nil
}

// AssignTicket links a ticket. Only one ticket per registration, and only while
// the registration is REGISTERED or CONFIRMED.
func (a EventAttendee) AssignTicket(ticketID string, at time.Time) (EventAttendee, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return EventAttendee{}, newError(KindEventAttendeeUpdate, CodeAttendeeTicketRequired, "ticket id is required")
	}
	if a.ticketID != "" {
		return EventAttendee{}, newError(KindEventAttendeeUpdate, CodeAttendeeTicketAssigned, "attendee already has a ticket assigned")
	}
	if !a.status.IsOpen() {
		return EventAttendee{}, newError(KindEventAttendeeUpdate, CodeAttendeeStatusDisallowsOp,
			fmt.Sprintf("cannot assign ticket to attendee with status %s", a.status))
	}
	next := a.next(at)
	next.ticketID = ticketID
	return next, nil
}

// AddNotes appends notes on a new line after any existing notes.
func (a EventAttendee) AddNotes(notes string, at time.Time) (EventAttendee, error) {
	if strings.TrimSpace(notes) == "" {
		return EventAttendee{}, newError(KindEventAttendeeUpdate, CodeAttendeeNotesRequired, "notes cannot be empty")
	}
	next := a.next(at)
	if next.notes == "" {
		next.notes = notes
	} else {
		next.notes = next.notes + "\n" + notes
	}
	return next, nil
}

// Cancel withdraws the registration. Already cancelled is a no-op; a checked-in
// attendee cannot cancel.
func (a EventAttendee) Cancel(at time.Time) (EventAttendee, error) {
	if a.status.IsCancelled() {
		return a, nil
	}
	if a.checkedIn {
		return EventAttendee{}, newError(KindEventAttendeeUpdate, CodeAttendeeAlreadyCheckedIn, "cannot cancel after check-in")
	}
	next := a.next(at)
	next.status = vo.AttendanceStatusCancelled()
	return next, nil
}

func (a EventAttendee) next(at time.Time) EventAttendee {
	a.Base = a.touched(at)
	a.checkedInDate = copyTime(a.checkedInDate)
	return a
}
