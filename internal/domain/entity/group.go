package entity

import (
	"strings"
	"time"

	"github.com/oksasatya/eventhub/internal/domain/shared"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

// InvitationCodeLength is the length of generated invitation codes.
const InvitationCodeLength = 8

// Group is a social grouping of attendees around an event.
// CLOSED is terminal; ACTIVE and INACTIVE toggle while the group is open.
type Group struct {
	Base
	name           string
	description    *string
	eventID        string
	createdByID    string
	invitationCode string
	maxMembers     *int
	status         vo.GroupStatus
	metadata       Metadata
}

// GroupProps is the plain-data projection of a Group.
type GroupProps struct {
	BaseProps
	Name           string         `json:"name"`
	Description    *string        `json:"description,omitempty"`
	EventID        string         `json:"event_id"`
	CreatedByID    string         `json:"created_by_id"`
	InvitationCode string         `json:"invitation_code,omitempty"`
	MaxMembers     *int           `json:"max_members,omitempty"`
	Status         vo.GroupStatus `json:"status"`
	Metadata       Metadata       `json:"metadata,omitempty"`
}

// CreateGroupProps is the untrusted input accepted by CreateGroup.
type CreateGroupProps struct {
	ID             string
	Name           string
	Description    *string
	EventID        string
	CreatedByID    string
	InvitationCode string
	MaxMembers     *int
	Status         string
	Metadata       map[string]any
}

// CreateGroup validates props and returns an ACTIVE group.
func CreateGroup(props CreateGroupProps, clk shared.Clock, ids shared.IDGenerator) (Group, error) {
	name := strings.TrimSpace(props.Name)
	if name == "" {
		return Group{}, newError(KindGroupCreate, CodeGroupNameRequired, "group name is required")
	}
	eventID := strings.TrimSpace(props.EventID)
	if eventID == "" {
		return Group{}, newError(KindGroupCreate, CodeGroupEventRequired, "event id is required")
	}
	createdBy := strings.TrimSpace(props.CreatedByID)
	if createdBy == "" {
		return Group{}, newError(KindGroupCreate, CodeGroupCreatorRequired, "creator id is required")
	}
	if err := checkMaxMembers(props.MaxMembers, KindGroupCreate); err != nil {
		return Group{}, err
	}
	status := vo.GroupStatusActive()
	if strings.TrimSpace(props.Status) != "" {
		s, err := vo.NewGroupStatus(props.Status)
		if err != nil {
			return Group{}, wrapError(KindGroupCreate, CodeGroupInvalidStatus, err.Error(), err)
		}
		status = s
	}

	id := strings.TrimSpace(props.ID)
	if id == "" {
		id = shared.IDsOrUUID(ids).NewID()
	}
	base := newBase(id, shared.ClockOrSystem(clk).Now())
	base.isActive = status.IsActive()
	return Group{
		Base:           base,
		name:           name,
		description:    copyString(props.Description),
		eventID:        eventID,
		createdByID:    createdBy,
		invitationCode: strings.TrimSpace(props.InvitationCode),
		maxMembers:     copyInt(props.MaxMembers),
		status:         status,
		metadata:       Metadata(props.Metadata).Merge(nil),
	}, nil
}

// ReconstituteGroup rebuilds a group from trusted storage.
func ReconstituteGroup(p GroupProps) Group {
	return Group{
		Base:           baseFromProps(p.BaseProps),
		name:           p.Name,
		description:    copyString(p.Description),
		eventID:        p.EventID,
		createdByID:    p.CreatedByID,
		invitationCode: p.InvitationCode,
		maxMembers:     copyInt(p.MaxMembers),
		status:         p.Status,
		metadata:       p.Metadata.Clone(),
	}
}

func (g Group) Props() GroupProps {
	return GroupProps{
		BaseProps:      g.baseProps(),
		Name:           g.name,
		Description:    copyString(g.description),
		EventID:        g.eventID,
		CreatedByID:    g.createdByID,
		InvitationCode: g.invitationCode,
		MaxMembers:     copyInt(g.maxMembers),
		Status:         g.status,
		Metadata:       g.metadata.Clone(),
	}
}

func (g Group) Name() string           { return g.name }
func (g Group) Description() *string   { return copyString(g.description) }
func (g Group) EventID() string        { return g.eventID }
func (g Group) CreatedByID() string    { return g.createdByID }
func (g Group) InvitationCode() string { return g.invitationCode }
func (g Group) MaxMembers() *int       { return copyInt(g.maxMembers) }
func (g Group) Status() vo.GroupStatus { return g.status }
func (g Group) Metadata() Metadata     { return g.metadata.Clone() }

// Update replaces name, description and maxMembers. Omitted (nil) optional
// arguments clear the stored value rather than keeping it.
func (g Group) Update(name string, description *string, maxMembers *int, at time.Time) (Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Group{}, newError(KindGroupUpdate, CodeGroupNameRequired, "group name is required")
	}
	if err := checkMaxMembers(maxMembers, KindGroupUpdate); err != nil {
		return Group{}, err
	}
	next := g.next(at)
	next.name = name
	next.description = copyString(description)
	next.maxMembers = copyInt(maxMembers)
	return next, nil
}

// GenerateInvitationCode sets code, or a fresh 8-character uppercase base-36
// code from gen when code is empty.
func (g Group) GenerateInvitationCode(code string, gen shared.CodeGenerator, at time.Time) (Group, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		generated, err := shared.CodesOrBase36(gen).NewCode(InvitationCodeLength)
		if err != nil {
			return Group{}, wrapError(KindGroupUpdate, CodeGroupInvitationCodeFail, "generate invitation code: "+err.Error(), err)
		}
		code = generated
	}
	next := g.next(at)
	next.invitationCode = code
	return next, nil
}

// Deactivate moves the group to INACTIVE. Closed groups cannot be deactivated.
func (g Group) Deactivate(at time.Time) (Group, error) {
	if g.status.IsClosed() {
		return Group{}, newError(KindGroupUpdate, CodeGroupClosed, "cannot deactivate a closed group")
	}
	next := g.next(at)
	next.status = vo.GroupStatusInactive()
	next.isActive = false
	return next, nil
}

// Activate moves the group to ACTIVE. Closed groups cannot be reopened.
func (g Group) Activate(at time.Time) (Group, error) {
	if g.status.IsClosed() {
		return Group{}, newError(KindGroupUpdate, CodeGroupClosed, "cannot activate a closed group")
	}
	next := g.next(at)
	next.status = vo.GroupStatusActive()
	next.isActive = true
	return next, nil
}

// Close is unconditional and terminal.
func (g Group) Close(at time.Time) Group {
	next := g.next(at)
	next.status = vo.GroupStatusClosed()
	next.isActive = false
	return next
}

// CanAddMember reports whether a group currently holding currentMemberCount
// members admits one more.
func (g Group) CanAddMember(currentMemberCount int) bool {
	if !g.status.IsActive() || !g.isActive {
		return false
	}
	if g.maxMembers == nil {
		return true
	}
	return currentMemberCount < *g.maxMembers
}

func (g Group) UpdateMetadata(patch map[string]any, at time.Time) Group {
	next := g.next(at)
	next.metadata = next.metadata.Merge(patch)
	return next
}

func (g Group) next(at time.Time) Group {
	g.Base = g.touched(at)
	g.description = copyString(g.description)
	g.maxMembers = copyInt(g.maxMembers)
	g.metadata = g.metadata.Clone()
	return g
}

func checkMaxMembers(n *int, kind Kind) error {
	if n != nil && *n <= 0 {
		return newError(kind, CodeGroupInvalidMaxMembers, "max members must be greater than zero")
	}
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
