package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/eventhub/internal/application"
	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
	"github.com/oksasatya/eventhub/internal/interface/middleware"
	"github.com/oksasatya/eventhub/pkg/response"
)

type GroupHandler struct {
	Svc    *app.GroupService
	Logger *logrus.Logger
}

func NewGroupHandler(svc *app.GroupService, logger *logrus.Logger) *GroupHandler {
	return &GroupHandler{Svc: svc, Logger: logger}
}

type createGroupRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	EventID     string         `json:"event_id" binding:"required"`
	MaxMembers  *int           `json:"max_members"`
	Metadata    map[string]any `json:"metadata"`
}

// A nil description or max_members clears the stored value.
type updateGroupRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	MaxMembers  *int    `json:"max_members"`
}

type canJoinBody struct {
	GroupID     string `json:"group_id"`
	MemberCount int    `json:"member_count"`
	CanJoin     bool   `json:"can_join"`
}

func groupBody(g entity.Group) entity.GroupProps { return g.Props() }

// Create opens a group created by the caller.
func (h *GroupHandler) Create(c *gin.Context) {
	var req createGroupRequest
	if !bindJSON(c, &req) {
		return
	}
	g, err := h.Svc.Create(c.Request.Context(), app.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		EventID:     req.EventID,
		CreatedByID: middleware.UserID(c),
		MaxMembers:  req.MaxMembers,
		Metadata:    req.Metadata,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, groupBody(g), "group created", nil)
}

func (h *GroupHandler) Get(c *gin.Context) {
	g, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, groupBody(g), "ok", nil)
}

func (h *GroupHandler) List(c *gin.Context) {
	status, ok := statusQuery(c, "status", vo.NewGroupStatus)
	if !ok {
		return
	}
	opts := listOptions(c)
	page, err := h.Svc.List(c.Request.Context(), repo.GroupFilter{
		EventID:     c.Query("event_id"),
		CreatedByID: c.Query("created_by_id"),
		Status:      status,
	}, opts)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writePage(c, page, opts, groupBody)
}

func (h *GroupHandler) FindByInvitationCode(c *gin.Context) {
	g, err := h.Svc.FindByInvitationCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, groupBody(g), "ok", nil)
}

// CanJoin answers whether one more member fits given member_count current members.
func (h *GroupHandler) CanJoin(c *gin.Context) {
	n, err := strconv.Atoi(c.Query("member_count"))
	if err != nil || n < 0 {
		response.Error[any](c, http.StatusBadRequest, "member_count must be a non-negative integer", CodeInvalidValue, nil)
		return
	}
	ok, err := h.Svc.CanJoin(c.Request.Context(), c.Param("id"), n)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, canJoinBody{GroupID: c.Param("id"), MemberCount: n, CanJoin: ok}, "ok", nil)
}

func (h *GroupHandler) Update(c *gin.Context) {
	var req updateGroupRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "group updated", func() (entity.Group, error) {
		return h.Svc.Update(c.Request.Context(), c.Param("id"), app.UpdateGroupInput{
			Name:        req.Name,
			Description: req.Description,
			MaxMembers:  req.MaxMembers,
		})
	})
}

func (h *GroupHandler) RegenerateInvitationCode(c *gin.Context) {
	h.transition(c, "invitation code regenerated", func() (entity.Group, error) {
		return h.Svc.RegenerateInvitationCode(c.Request.Context(), c.Param("id"))
	})
}

func (h *GroupHandler) Activate(c *gin.Context) {
	h.transition(c, "group activated", func() (entity.Group, error) {
		return h.Svc.Activate(c.Request.Context(), c.Param("id"))
	})
}

func (h *GroupHandler) Deactivate(c *gin.Context) {
	h.transition(c, "group deactivated", func() (entity.Group, error) {
		return h.Svc.Deactivate(c.Request.Context(), c.Param("id"))
	})
}

func (h *GroupHandler) Close(c *gin.Context) {
	h.transition(c, "group closed", func() (entity.Group, error) {
		return h.Svc.Close(c.Request.Context(), c.Param("id"))
	})
}

func (h *GroupHandler) UpdateMetadata(c *gin.Context) {
	var req metadataRequest
	if !bindJSON(c, &req) {
		return
	}
	h.transition(c, "group metadata updated", func() (entity.Group, error) {
		return h.Svc.UpdateMetadata(c.Request.Context(), c.Param("id"), req.Metadata)
	})
}

func (h *GroupHandler) transition(c *gin.Context, msg string, fn func() (entity.Group, error)) {
	g, err := fn()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, groupBody(g), msg, nil)
}
