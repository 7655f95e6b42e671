package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetval/internal/adapter/http/handlers/mocks"
	"fleetval/internal/adapter/http/middleware"
	"fleetval/internal/domain/entities"
	"fleetval/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func statusRouter(h *StatusHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ActorContext())
	r.PUT("/v1/reports/:id/status", middleware.RequireAdmin(), h.UpdateStatus)
	r.POST("/v1/reports/overdue-sweep", middleware.RequireAdmin(), h.SweepOverdue)
	return r
}

func TestStatusHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("anonymous caller gets 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := statusRouter(NewStatusHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/reports/rep-1/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := statusRouter(NewStatusHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/reports/rep-1/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := statusRouter(NewStatusHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/reports/rep-1/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "adm-1")
		req.Header.Set("X-User-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := statusRouter(NewStatusHandler(uc))

		uc.EXPECT().
			Apply(gomock.Any(), "rep-1", entities.StatusDraft, entities.Actor{ID: "adm-1", Admin: true}, "").
			Return(entities.Report{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPut, "/v1/reports/rep-1/status", bytes.NewBufferString(`{"status":"draft"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "adm-1")
		req.Header.Set("X-User-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("successful transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		r := statusRouter(NewStatusHandler(uc))

		uc.EXPECT().
			Apply(gomock.Any(), "rep-1", entities.StatusInProgress, entities.Actor{ID: "adm-1", Admin: true}, "picked up").
			Return(entities.Report{ID: "rep-1", Status: entities.StatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/reports/rep-1/status", bytes.NewBufferString(`{"status":"in_progress","notes":"picked up"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "adm-1")
		req.Header.Set("X-User-Role", "admin")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unreadable body: %v", err)
		}
		if body["status"] != "in_progress" {
			t.Fatalf("expected in_progress, got %v", body["status"])
		}
	})
}

func TestStatusHandler_SweepOverdue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStatusUseCase(ctrl)
	r := statusRouter(NewStatusHandler(uc))

	uc.EXPECT().SweepOverdue(gomock.Any(), gomock.Any()).Return(2, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/overdue-sweep", nil)
	req.Header.Set("X-User-ID", "adm-1")
	req.Header.Set("X-User-Role", "admin")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unreadable body: %v", err)
	}
	if body["marked_overdue"] != float64(2) {
		t.Fatalf("expected 2 marked, got %v", body["marked_overdue"])
	}
}
