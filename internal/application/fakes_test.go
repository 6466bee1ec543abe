package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	"github.com/oksasatya/eventhub/internal/domain/shared"
	"github.com/oksasatya/eventhub/pkg/mailer"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixed() shared.Clock { return shared.NewFixedClock(now) }

type fakeRepo[T any] struct {
	mu       sync.Mutex
	items    map[string]T
	order    []string
	idOf     func(T) string
	conflict func(a, b T) bool
	updates  int
}

func newFakeRepo[T any](idOf func(T) string, conflict func(a, b T) bool) *fakeRepo[T] {
	return &fakeRepo[T]{items: map[string]T{}, idOf: idOf, conflict: conflict}
}

func (r *fakeRepo[T]) Create(_ context.Context, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.idOf(v)
	if _, ok := r.items[id]; ok {
		return repo.ErrDuplicate
	}
	if r.conflict != nil {
		for _, existing := range r.items {
			if r.conflict(existing, v) {
				return repo.ErrDuplicate
			}
		}
	}
	r.items[id] = v
	r.order = append(r.order, id)
	return nil
}

func (r *fakeRepo[T]) Update(_ context.Context, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.idOf(v)
	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	r.items[id] = v
	r.updates++
	return nil
}

func (r *fakeRepo[T]) GetByID(_ context.Context, id string) (T, error) {
	return r.find(func(v T) bool { return r.idOf(v) == id })
}

func (r *fakeRepo[T]) find(match func(T) bool) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if v := r.items[id]; match(v) {
			return v, nil
		}
	}
	var zero T
	return zero, repo.ErrNotFound
}

func (r *fakeRepo[T]) list(match func(T) bool, opts repo.ListOptions) (repo.Page[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []T
	for _, id := range r.order {
		if v := r.items[id]; match(v) {
			all = append(all, v)
		}
	}
	page := repo.Page[T]{Total: len(all)}
	for i := opts.Offset; i < len(all) && len(page.Items) < opts.Limit; i++ {
		page.Items = append(page.Items, all[i])
	}
	return page, nil
}

type fakePayments struct{ *fakeRepo[entity.Payment] }

func newFakePayments() fakePayments {
	return fakePayments{newFakeRepo[entity.Payment](func(p entity.Payment) string { return p.ID() }, nil)}
}

func (f fakePayments) List(_ context.Context, flt repo.PaymentFilter, opts repo.ListOptions) (repo.Page[entity.Payment], error) {
	return f.list(func(p entity.Payment) bool {
		return (flt.UserID == "" || p.UserID() == flt.UserID) &&
			(flt.EventID == "" || p.EventID() == flt.EventID) &&
			(flt.Status.IsZero() || p.Status().Equals(flt.Status))
	}, opts)
}

type fakeTickets struct{ *fakeRepo[entity.Ticket] }

func newFakeTickets() fakeTickets {
	return fakeTickets{newFakeRepo[entity.Ticket](func(t entity.Ticket) string { return t.ID() },
		func(a, b entity.Ticket) bool { return a.QRCode() == b.QRCode() })}
}

func (f fakeTickets) GetByQRCode(_ context.Context, qr string) (entity.Ticket, error) {
	return f.find(func(t entity.Ticket) bool { return t.QRCode() == qr })
}

func (f fakeTickets) List(_ context.Context, flt repo.TicketFilter, opts repo.ListOptions) (repo.Page[entity.Ticket], error) {
	return f.list(func(t entity.Ticket) bool {
		return (flt.UserID == "" || t.UserID() == flt.UserID) &&
			(flt.EventID == "" || t.EventID() == flt.EventID) &&
			(flt.PaymentID == "" || t.PaymentID() == flt.PaymentID) &&
			(flt.Status.IsZero() || t.Status().Equals(flt.Status))
	}, opts)
}

type fakeAttendees struct {
	*fakeRepo[entity.EventAttendee]
}

func newFakeAttendees() fakeAttendees {
	return fakeAttendees{newFakeRepo[entity.EventAttendee](func(a entity.EventAttendee) string { return a.ID() },
		func(a, b entity.EventAttendee) bool { return a.EventID() == b.EventID() && a.UserID() == b.UserID() })}
}

func (f fakeAttendees) GetByEventAndUser(_ context.Context, eventID, userID string) (entity.EventAttendee, error) {
	return f.find(func(a entity.EventAttendee) bool { return a.EventID() == eventID && a.UserID() == userID })
}

func (f fakeAttendees) List(_ context.Context, flt repo.EventAttendeeFilter, opts repo.ListOptions) (repo.Page[entity.EventAttendee], error) {
	return f.list(func(a entity.EventAttendee) bool {
		return (flt.EventID == "" || a.EventID() == flt.EventID) &&
			(flt.UserID == "" || a.UserID() == flt.UserID) &&
			(flt.Status.IsZero() || a.Status().Equals(flt.Status))
	}, opts)
}

type fakeGroups struct{ *fakeRepo[entity.Group] }

func newFakeGroups() fakeGroups {
	return fakeGroups{newFakeRepo[entity.Group](func(g entity.Group) string { return g.ID() },
		func(a, b entity.Group) bool {
			return a.InvitationCode() != "" && a.InvitationCode() == b.InvitationCode()
		})}
}

func (f fakeGroups) GetByInvitationCode(_ context.Context, code string) (entity.Group, error) {
	return f.find(func(g entity.Group) bool { return g.InvitationCode() == code })
}

func (f fakeGroups) List(_ context.Context, flt repo.GroupFilter, opts repo.ListOptions) (repo.Page[entity.Group], error) {
	return f.list(func(g entity.Group) bool {
		return (flt.EventID == "" || g.EventID() == flt.EventID) &&
			(flt.CreatedByID == "" || g.CreatedByID() == flt.CreatedByID) &&
			(flt.Status.IsZero() || g.Status().Equals(flt.Status))
	}, opts)
}

type fakeTemplates struct {
	*fakeRepo[entity.NotificationTemplate]
}

func newFakeTemplates() fakeTemplates {
	return fakeTemplates{newFakeRepo[entity.NotificationTemplate](func(t entity.NotificationTemplate) string { return t.ID() },
		func(a, b entity.NotificationTemplate) bool { return a.Name() == b.Name() })}
}

func (f fakeTemplates) GetByName(_ context.Context, name string) (entity.NotificationTemplate, error) {
	return f.find(func(t entity.NotificationTemplate) bool { return t.Name() == name })
}

func (f fakeTemplates) List(_ context.Context, flt repo.NotificationTemplateFilter, opts repo.ListOptions) (repo.Page[entity.NotificationTemplate], error) {
	return f.list(func(t entity.NotificationTemplate) bool {
		return (flt.Channel.IsZero() || t.Channel().Equals(flt.Channel)) &&
			(flt.NotificationType == "" || t.NotificationType() == flt.NotificationType) &&
			(!flt.ActiveOnly || t.IsActive())
	}, opts)
}

type fakeIndex struct {
	mu      sync.Mutex
	entries map[string]string
	lookups int
}

func newFakeIndex() *fakeIndex { return &fakeIndex{entries: map[string]string{}} }

func (f *fakeIndex) Put(_ context.Context, code, groupID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[code] = groupID
	return nil
}

func (f *fakeIndex) Lookup(_ context.Context, code string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	id, ok := f.entries[code]
	return id, ok, nil
}

func (f *fakeIndex) Delete(_ context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, code)
	return nil
}

type fakePublisher struct {
	jobs []mailer.NotificationJob
	err  error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	job, ok := body.(mailer.NotificationJob)
	if !ok {
		return errors.New("unexpected payload type")
	}
	f.jobs = append(f.jobs, job)
	return nil
}

// sequenceCodes hands out codes in order, repeating the last one when exhausted.
type sequenceCodes struct {
	codes []string
	next  int
}

func (s *sequenceCodes) NewCode(int) (string, error) {
	c := s.codes[s.next]
	if s.next < len(s.codes)-1 {
		s.next++
	}
	return c, nil
}
