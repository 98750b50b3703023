package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fhuszti/transcripts-ms-go/internal/api_context"
	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/mock"
	"github.com/fhuszti/transcripts-ms-go/internal/usecase/media"
)

func subtitleRequest(id db.UUID, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/medias/abc/subtitle", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/medias/abc/subtitle", strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), api_context.IDKey, id)
	return req.WithContext(ctx)
}

func TestGenerateSubtitleHandler_Success(t *testing.T) {
	id := db.NewUUID()
	svc := &mock.MockSubtitleGenerator{}
	rr := httptest.NewRecorder()

	GenerateSubtitleHandler(svc)(rr, subtitleRequest(id, `{"provider":"openai","model":"gpt-4o"}`))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want 204; body %s", rr.Code, rr.Body.String())
	}
	if svc.In.ID != id || svc.In.Provider != "openai" || svc.In.Model != "gpt-4o" {
		t.Errorf("input not carried over: %+v", svc.In)
	}
}

func TestGenerateSubtitleHandler_InvalidProvider(t *testing.T) {
	svc := &mock.MockSubtitleGenerator{}
	rr := httptest.NewRecorder()

	GenerateSubtitleHandler(svc)(rr, subtitleRequest(db.NewUUID(), `{"provider":"anthropic"}`))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rr.Code)
	}
	if svc.Called {
		t.Error("usecase should not run on invalid input")
	}
}

func TestGenerateSubtitleHandler_NoTranscript(t *testing.T) {
	svc := &mock.MockSubtitleGenerator{Err: media.ErrNoTranscript}
	rr := httptest.NewRecorder()

	GenerateSubtitleHandler(svc)(rr, subtitleRequest(db.NewUUID(), ""))

	if rr.Code != http.StatusConflict {
		t.Errorf("status = %d; want 409", rr.Code)
	}
}

func TestGenerateSubtitleHandler_ProviderFailure(t *testing.T) {
	svc := &mock.MockSubtitleGenerator{Err: media.ErrSummaryFailed}
	rr := httptest.NewRecorder()

	GenerateSubtitleHandler(svc)(rr, subtitleRequest(db.NewUUID(), ""))

	if rr.Code != http.StatusBadGateway {
		t.Errorf("status = %d; want 502", rr.Code)
	}
}
