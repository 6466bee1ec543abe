package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() { gin.SetMode(gin.TestMode) }

func TestSuccessWritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "rid-1")

	Success(c, http.StatusCreated, map[string]string{"id": "p1"}, "created", PageMeta{Total: 1, Limit: 20})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	var body APIResponse[map[string]string]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.RequestID != "rid-1" || body.Data["id"] != "p1" {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Error != nil {
		t.Fatalf("success must not carry an error body")
	}
}

func TestErrorAbortsWithCode(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error[any](c, http.StatusUnprocessableEntity, "ticket already used", "TICKET_ALREADY_USED", nil)

	if !c.IsAborted() {
		t.Fatalf("context should be aborted")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	var body APIResponse[any]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error == nil || body.Error.Code != "TICKET_ALREADY_USED" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestErrorDefaultsToBadRequest(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	res := Error[any](c, 0, "bad", "", nil)
	if res.Status != http.StatusBadRequest || w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d/%d", res.Status, w.Code)
	}
	if res.Error != nil {
		t.Fatalf("empty code and details should omit error body")
	}
}
