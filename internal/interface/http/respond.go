package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/eventhub/internal/application"
	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
	"github.com/oksasatya/eventhub/pkg/response"
	"github.com/oksasatya/eventhub/pkg/validation"
)

const (
	CodeInvalidPayload = "INVALID_PAYLOAD"
	CodeInvalidValue   = "INVALID_VALUE"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeUnavailable    = "UNAVAILABLE"
	CodeInternal       = "INTERNAL"
)

// applicationErrors maps service sentinels to a status and code.
var applicationErrors = []struct {
	err    error
	status int
	code   string
}{
	{app.ErrPaymentNotFound, http.StatusNotFound, CodeNotFound},
	{app.ErrTicketNotFound, http.StatusNotFound, CodeNotFound},
	{app.ErrAttendeeNotFound, http.StatusNotFound, CodeNotFound},
	{app.ErrGroupNotFound, http.StatusNotFound, CodeNotFound},
	{app.ErrTemplateNotFound, http.StatusNotFound, CodeNotFound},
	{repo.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{app.ErrAlreadyRegistered, http.StatusConflict, "ATTENDEE_ALREADY_REGISTERED"},
	{app.ErrTemplateNameTaken, http.StatusConflict, "TEMPLATE_NAME_TAKEN"},
	{repo.ErrDuplicate, http.StatusConflict, CodeConflict},
	{app.ErrPaymentNotCompleted, http.StatusUnprocessableEntity, string(entity.CodePaymentNotCompleted)},
	{app.ErrPaymentMismatch, http.StatusUnprocessableEntity, "PAYMENT_MISMATCH"},
	{app.ErrTicketMismatch, http.StatusUnprocessableEntity, "TICKET_MISMATCH"},
	{app.ErrTemplateInactive, http.StatusUnprocessableEntity, "TEMPLATE_INACTIVE"},
	{app.ErrPublisherUnavailable, http.StatusServiceUnavailable, CodeUnavailable},
}

// writeError renders err: rejected construction is 400, rejected transition
// 422, unknown ids 404. Anything unrecognized is logged and hidden behind 500.
func writeError(c *gin.Context, logger logrus.FieldLogger, err error) {
	var de *entity.DomainError
	if errors.As(err, &de) {
		status := http.StatusUnprocessableEntity
		if strings.HasSuffix(string(de.Kind), "_CREATE") {
			status = http.StatusBadRequest
		}
		response.Error[any](c, status, de.Message, string(de.Code), nil)
		return
	}
	if errors.Is(err, vo.ErrInvalidValue) {
		response.Error[any](c, http.StatusBadRequest, err.Error(), CodeInvalidValue, nil)
		return
	}
	for _, m := range applicationErrors {
		if errors.Is(err, m.err) {
			response.Error[any](c, m.status, m.err.Error(), m.code, nil)
			return
		}
	}
	logger.WithError(err).WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.FullPath(),
	}).Error("request failed")
	response.Error[any](c, http.StatusInternalServerError, "internal error", CodeInternal, nil)
}

// bindJSON decodes the body into dst, answering 400 with field details on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", CodeInvalidPayload, validation.ToDetails(err))
		return false
	}
	return true
}

// listOptions reads limit and offset query parameters; bad values fall back to defaults.
func listOptions(c *gin.Context) repo.ListOptions {
	var o repo.ListOptions
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		o.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		o.Offset = v
	}
	return o.Normalize()
}

// statusQuery parses an optional status filter with parse; an empty query yields the zero value.
func statusQuery[T any](c *gin.Context, name string, parse func(string) (T, error)) (T, bool) {
	var zero T
	raw := c.Query(name)
	if raw == "" {
		return zero, true
	}
	v, err := parse(raw)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, err.Error(), CodeInvalidValue, nil)
		return zero, false
	}
	return v, true
}

func writePage[T, P any](c *gin.Context, page repo.Page[T], opts repo.ListOptions, project func(T) P) {
	items := make([]P, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, project(it))
	}
	response.Success(c, http.StatusOK, items, "ok", response.PageMeta{Total: page.Total, Limit: opts.Limit, Offset: opts.Offset})
}

type metadataRequest struct {
	Metadata map[string]any `json:"metadata" binding:"required"`
}
