package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/transcripts-ms-go/internal/mock"
	"github.com/go-chi/chi/v5"
)

func healthRouter(handler http.HandlerFunc) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health/llm/{provider}", handler)
	return r
}

func TestLLMHealthHandler_Healthy(t *testing.T) {
	client := &mock.LLMClient{HealthOK: true, HealthDetail: "ok"}
	router := healthRouter(LLMHealthHandler(mock.ClientGetter(client, nil)))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/llm/openai", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body %s", rr.Code, rr.Body.String())
	}
	var resp LLMHealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if !resp.OK || resp.Provider != "openai" || resp.Detail != "ok" {
		t.Errorf("response = %+v", resp)
	}
	if !client.HealthCalled {
		t.Error("probe should reach the client")
	}
}

func TestLLMHealthHandler_Unhealthy(t *testing.T) {
	client := &mock.LLMClient{HealthOK: false, HealthDetail: "empty reply"}
	router := healthRouter(LLMHealthHandler(mock.ClientGetter(client, nil)))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/llm/dashscope", nil))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d; want 502", rr.Code)
	}
	var resp LLMHealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not json: %v", err)
	}
	if resp.OK || resp.Detail != "empty reply" {
		t.Errorf("response = %+v", resp)
	}
}

func TestLLMHealthHandler_UnknownProvider(t *testing.T) {
	router := healthRouter(LLMHealthHandler(mock.ClientGetter(nil, errors.New("unknown provider"))))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/llm/anthropic", nil))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rr.Code)
	}
}
