package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/config"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	h, err := NewHandler(&config.Config{}, nil, nil, nil)
	require.NoError(t, err)
	return h
}

// decodeResponse reads the recorded body as exactly one JSON envelope.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	dec := json.NewDecoder(rec.Body)
	var resp Response
	require.NoError(t, dec.Decode(&resp))
	assert.False(t, dec.More(), "expected a single response body")
	return resp
}

func TestSetShiftStatusRejectsFinalizedShift(t *testing.T) {
	h := newTestHandler(t)

	for _, status := range []domain.ShiftStatus{
		domain.ShiftStatusDeclined,
		domain.ShiftStatusCompleted,
		domain.ShiftStatusCancelled,
	} {
		shift := &domain.Shift{ID: 1, Status: status}

		req := httptest.NewRequest(http.MethodPatch, "/shifts/1/status", strings.NewReader(`{"status":"completed"}`))
		req = req.WithContext(context.WithValue(req.Context(), ShiftCtx, shift))
		rec := httptest.NewRecorder()

		h.SetShiftStatus(rec, req)

		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success, "status %s", status)
		assert.Equal(t, status, shift.Status)
	}
}

func TestGetMyApplicationsRejectsMalformedPostingID(t *testing.T) {
	h := newTestHandler(t)

	myInfo := &domain.User{ID: 7, AccountType: domain.AccountTypeRestaurant}
	req := httptest.NewRequest(http.MethodGet, "/applications?job_posting_id=12abc", nil)
	req = req.WithContext(context.WithValue(req.Context(), MyInfoCtx, myInfo))
	rec := httptest.NewRecorder()

	h.GetMyApplications(rec, req)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid job posting ID", resp.Message)
}

// publishMail writes the error envelope itself when publishing fails, so
// callers must return on false instead of writing their own response.
func TestPublishMailFailureWritesSingleErrorResponse(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	rec := httptest.NewRecorder()

	ok := h.publishMail(rec, req, domain.MailMessage{
		Type: "welcome",
		To:   "alex.smith@example.com",
		Data: make(chan int), // not serializable, forces the failure path
	})

	assert.False(t, ok)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}
