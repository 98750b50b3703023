package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fhuszti/transcripts-ms-go/internal/converter"
	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/mock"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/fhuszti/transcripts-ms-go/internal/usecase/media"
)

func TestRegisterMediaHandler_InvalidJSON(t *testing.T) {
	svc := &mock.MockMediaRegisterer{}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/medias", strings.NewReader("{not json"))

	RegisterMediaHandler(svc)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rr.Code)
	}
	if svc.Called {
		t.Error("usecase should not run on a broken payload")
	}
}

func TestRegisterMediaHandler_ValidationFails(t *testing.T) {
	svc := &mock.MockMediaRegisterer{}
	body := `{"title":"","original_key":""}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/medias", strings.NewReader(body))

	RegisterMediaHandler(svc)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "title") {
		t.Errorf("validation body should name the field: %s", rr.Body.String())
	}
	if svc.Called {
		t.Error("usecase should not run on invalid input")
	}
}

func TestRegisterMediaHandler_UnsupportedFormat(t *testing.T) {
	svc := &mock.MockMediaRegisterer{Err: fmt.Errorf("%w: %q", converter.ErrUnsupportedFormat, "file.ogg")}
	body := `{"title":"demo","original_key":"uploads/file.ogg"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/medias", strings.NewReader(body))

	RegisterMediaHandler(svc)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rr.Code)
	}
}

func TestRegisterMediaHandler_FileNotUploaded(t *testing.T) {
	svc := &mock.MockMediaRegisterer{Err: fmt.Errorf("%w: %q", media.ErrObjectNotFound, "uploads/file.mp3")}
	body := `{"title":"demo","original_key":"uploads/file.mp3"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/medias", strings.NewReader(body))

	RegisterMediaHandler(svc)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "uploaded") {
		t.Errorf("body = %s", rr.Body.String())
	}
}

func TestRegisterMediaHandler_Success(t *testing.T) {
	id := db.NewUUID()
	svc := &mock.MockMediaRegisterer{Out: port.RegisterMediaOutput{ID: id}}
	body := `{"title":"demo","description":"a talk","source":"studio","is_private":true,"original_key":"uploads/file.mp3"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/medias", strings.NewReader(body))

	RegisterMediaHandler(svc)(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201; body %s", rr.Code, rr.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if resp["id"] != id.String() {
		t.Errorf("id = %q; want %q", resp["id"], id)
	}
	if svc.In.Title != "demo" || !svc.In.IsPrivate || svc.In.OriginalKey != "uploads/file.mp3" {
		t.Errorf("input not carried over: %+v", svc.In)
	}
}

func TestRegisterMediaHandler_InternalError(t *testing.T) {
	svc := &mock.MockMediaRegisterer{Err: errors.New("db down")}
	body := `{"title":"demo","original_key":"uploads/file.mp3"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/medias", strings.NewReader(body))

	RegisterMediaHandler(svc)(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want 500", rr.Code)
	}
}
