package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	"github.com/oksasatya/eventhub/internal/domain/shared"
)

// maxCodeAttempts bounds regeneration when a fresh invitation code collides.
const maxCodeAttempts = 5

// InvitationCodeIndex is a fast code -> group id lookup kept beside the repository.
type InvitationCodeIndex interface {
	Put(ctx context.Context, code, groupID string) error
	Lookup(ctx context.Context, code string) (groupID string, found bool, err error)
	Delete(ctx context.Context, code string) error
}

type GroupService struct {
	Repo  repo.GroupRepository
	Codes shared.CodeGenerator
	// Index is optional; lookups fall back to the repository.
	Index  InvitationCodeIndex
	Clock  shared.Clock
	IDs    shared.IDGenerator
	Logger *logrus.Logger
}

func NewGroupService(r repo.GroupRepository, index InvitationCodeIndex, codes shared.CodeGenerator, clk shared.Clock, ids shared.IDGenerator, logger *logrus.Logger) *GroupService {
	return &GroupService{
		Repo:   r,
		Codes:  shared.CodesOrBase36(codes),
		Index:  index,
		Clock:  shared.ClockOrSystem(clk),
		IDs:    shared.IDsOrUUID(ids),
		Logger: discardIfNil(logger),
	}
}

type CreateGroupInput struct {
	Name        string
	Description *string
	EventID     string
	CreatedByID string
	MaxMembers  *int
	Metadata    map[string]any
}

type UpdateGroupInput struct {
	Name        string
	Description *string
	MaxMembers  *int
}

// Create stores a new ACTIVE group with a freshly generated invitation code.
func (s *GroupService) Create(ctx context.Context, in CreateGroupInput) (entity.Group, error) {
	g, err := entity.CreateGroup(entity.CreateGroupProps{
		Name:        in.Name,
		Description: in.Description,
		EventID:     in.EventID,
		CreatedByID: in.CreatedByID,
		MaxMembers:  in.MaxMembers,
		Metadata:    in.Metadata,
	}, s.Clock, s.IDs)
	if err != nil {
		logRejection(s.Logger, "create group rejected", err, logrus.Fields{"event_id": in.EventID, "created_by_id": in.CreatedByID})
		return entity.Group{}, err
	}

	for attempt := 1; ; attempt++ {
		withCode, err := g.GenerateInvitationCode("", s.Codes, s.Clock.Now())
		if err != nil {
			return entity.Group{}, err
		}
		err = s.Repo.Create(ctx, withCode)
		if err == nil {
			g = withCode
			break
		}
		if !errors.Is(err, repo.ErrDuplicate) || attempt == maxCodeAttempts {
			return entity.Group{}, fmt.Errorf("create group: %w", err)
		}
		s.Logger.WithField("attempt", attempt).Debug("invitation code collision, retrying")
	}

	s.index(ctx, g.InvitationCode(), g.ID())
	s.Logger.WithFields(logrus.Fields{"group_id": g.ID(), "event_id": g.EventID()}).Info("group created")
	return g, nil
}

func (s *GroupService) Get(ctx context.Context, id string) (entity.Group, error) {
	return load(ctx, s.Repo.GetByID, id, ErrGroupNotFound)
}

func (s *GroupService) List(ctx context.Context, f repo.GroupFilter, opts repo.ListOptions) (repo.Page[entity.Group], error) {
	return s.Repo.List(ctx, f, opts.Normalize())
}

// FindByInvitationCode consults the index first. Stale or missing index
// entries fall back to the repository and are repaired.
func (s *GroupService) FindByInvitationCode(ctx context.Context, code string) (entity.Group, error) {
	if s.Index != nil {
		id, found, err := s.Index.Lookup(ctx, code)
		if err != nil {
			s.Logger.WithError(err).Warn("invitation code index lookup failed")
		}
		if found {
			g, err := s.Repo.GetByID(ctx, id)
			if err == nil && g.InvitationCode() == code {
				return g, nil
			}
		}
	}
	g, err := load(ctx, s.Repo.GetByInvitationCode, code, ErrGroupNotFound)
	if err != nil {
		return entity.Group{}, err
	}
	s.index(ctx, code, g.ID())
	return g, nil
}

// CanJoin reports whether the group admits one more member given its current count.
func (s *GroupService) CanJoin(ctx context.Context, id string, memberCount int) (bool, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return g.CanAddMember(memberCount), nil
}

func (s *GroupService) Update(ctx context.Context, id string, in UpdateGroupInput) (entity.Group, error) {
	return s.apply(ctx, id, "update", func(g entity.Group) (entity.Group, error) {
		return g.Update(in.Name, in.Description, in.MaxMembers, s.Clock.Now())
	})
}

func (s *GroupService) RegenerateInvitationCode(ctx context.Context, id string) (entity.Group, error) {
	var old string
	g, err := s.apply(ctx, id, "regenerate invitation code", func(g entity.Group) (entity.Group, error) {
		old = g.InvitationCode()
		return g.GenerateInvitationCode("", s.Codes, s.Clock.Now())
	})
	if err != nil {
		return entity.Group{}, err
	}
	if s.Index != nil && old != "" {
		if err := s.Index.Delete(ctx, old); err != nil {
			s.Logger.WithError(err).Warn("invitation code index delete failed")
		}
	}
	s.index(ctx, g.InvitationCode(), g.ID())
	return g, nil
}

func (s *GroupService) Activate(ctx context.Context, id string) (entity.Group, error) {
	return s.apply(ctx, id, "activate", func(g entity.Group) (entity.Group, error) {
		return g.Activate(s.Clock.Now())
	})
}

func (s *GroupService) Deactivate(ctx context.Context, id string) (entity.Group, error) {
	return s.apply(ctx, id, "deactivate", func(g entity.Group) (entity.Group, error) {
		return g.Deactivate(s.Clock.Now())
	})
}

func (s *GroupService) Close(ctx context.Context, id string) (entity.Group, error) {
	return s.apply(ctx, id, "close", func(g entity.Group) (entity.Group, error) {
		return g.Close(s.Clock.Now()), nil
	})
}

func (s *GroupService) UpdateMetadata(ctx context.Context, id string, patch map[string]any) (entity.Group, error) {
	return s.apply(ctx, id, "update metadata", func(g entity.Group) (entity.Group, error) {
		return g.UpdateMetadata(patch, s.Clock.Now()), nil
	})
}

func (s *GroupService) apply(ctx context.Context, id, op string, fn func(entity.Group) (entity.Group, error)) (entity.Group, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return entity.Group{}, err
	}
	next, err := fn(g)
	if err != nil {
		logRejection(s.Logger, op+" group rejected", err, logrus.Fields{"group_id": id, "status": g.Status().String()})
		return entity.Group{}, err
	}
	if err := s.Repo.Update(ctx, next); err != nil {
		return entity.Group{}, fmt.Errorf("%s group: %w", op, err)
	}
	s.Logger.WithFields(logrus.Fields{"group_id": id, "op": op, "status": next.Status().String()}).Info("group updated")
	return next, nil
}

func (s *GroupService) index(ctx context.Context, code, groupID string) {
	if s.Index == nil || code == "" {
		return
	}
	if err := s.Index.Put(ctx, code, groupID); err != nil {
		s.Logger.WithError(err).WithField("group_id", groupID).Warn("invitation code index put failed")
	}
}
