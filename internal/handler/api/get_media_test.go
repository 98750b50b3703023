package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/transcripts-ms-go/internal/api_context"
	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/mock"
	"github.com/fhuszti/transcripts-ms-go/internal/usecase/media"
)

func requestWithID(method, target string, id db.UUID) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), api_context.IDKey, id)
	return req.WithContext(ctx)
}

func TestGetMediaHandler_MissingID(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/medias/abc", nil)

	GetMediaHandler(renderer, &mock.MockMediaGetter{})(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rr.Code)
	}
	if renderer.Called {
		t.Error("renderer should not run without an id")
	}
}

func TestGetMediaHandler_NotFound(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{Err: media.ErrObjectNotFound}
	rr := httptest.NewRecorder()
	req := requestWithID(http.MethodGet, "/medias/abc", db.NewUUID())

	GetMediaHandler(renderer, &mock.MockMediaGetter{})(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rr.Code)
	}
}

func TestGetMediaHandler_Success(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{
		Data: []byte(`{"media":{"title":"demo"}}`),
		Etag: `"cafebabe"`,
	}
	rr := httptest.NewRecorder()
	req := requestWithID(http.MethodGet, "/medias/abc", db.NewUUID())

	GetMediaHandler(renderer, &mock.MockMediaGetter{})(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	if rr.Header().Get("ETag") != `"cafebabe"` {
		t.Errorf("etag header = %q", rr.Header().Get("ETag"))
	}
	if rr.Header().Get("Cache-Control") != "public, max-age=300" {
		t.Errorf("cache-control = %q", rr.Header().Get("Cache-Control"))
	}
	if rr.Body.String() != `{"media":{"title":"demo"}}` {
		t.Errorf("body = %s", rr.Body.String())
	}
}

func TestGetMediaHandler_NotModified(t *testing.T) {
	renderer := &mock.MockHTTPRenderer{
		Data: []byte(`{"media":{}}`),
		Etag: `"cafebabe"`,
	}
	rr := httptest.NewRecorder()
	req := requestWithID(http.MethodGet, "/medias/abc", db.NewUUID())
	req.Header.Set("If-None-Match", `"cafebabe"`)

	GetMediaHandler(renderer, &mock.MockMediaGetter{})(rr, req)

	if rr.Code != http.StatusNotModified {
		t.Fatalf("status = %d; want 304", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("304 must carry no body, got %s", rr.Body.String())
	}
}
