package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/mock"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/fhuszti/transcripts-ms-go/internal/task"
)

func TestProcessMediaHandler_InvalidID(t *testing.T) {
	svc := &mock.MockMediaProcessor{}
	err := ProcessMediaHandler(context.Background(), task.ProcessMediaPayload{MediaID: "not-a-uuid"}, svc)
	if err == nil {
		t.Fatal("expected error for a broken id")
	}
	if svc.Called {
		t.Error("pipeline should not run for a broken id")
	}
}

func TestProcessMediaHandler_Delegates(t *testing.T) {
	id := db.NewUUID()
	svc := &mock.MockMediaProcessor{}

	if err := ProcessMediaHandler(context.Background(), task.ProcessMediaPayload{MediaID: id.String()}, svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Called || svc.ID != id {
		t.Error("pipeline should run with the parsed id")
	}
}

func TestProcessMediaHandler_FailureSurfacesForRetry(t *testing.T) {
	svc := &mock.MockMediaProcessor{Err: errors.New("conversion failed")}
	err := ProcessMediaHandler(context.Background(), task.ProcessMediaPayload{MediaID: db.NewUUID().String()}, svc)
	if err == nil {
		t.Fatal("the task error must surface so the queue can retry")
	}
}

func TestGenerateSummaryHandler_Delegates(t *testing.T) {
	id := db.NewUUID()
	svc := &mock.MockSummaryGenerator{}
	p := task.GenerateSummaryPayload{
		MediaID:     id.String(),
		SummaryType: "KEY_POINTS",
		Provider:    "dashscope",
		Model:       "qwen-max",
	}

	if err := GenerateSummaryHandler(context.Background(), p, svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.In.ID != id || svc.In.SummaryType != port.SummaryKeyPoints {
		t.Errorf("input not carried over: %+v", svc.In)
	}
	if svc.In.Provider != "dashscope" || svc.In.Model != "qwen-max" {
		t.Errorf("provider/model not carried over: %+v", svc.In)
	}
}

func TestGenerateSummaryHandler_InvalidID(t *testing.T) {
	svc := &mock.MockSummaryGenerator{}
	err := GenerateSummaryHandler(context.Background(), task.GenerateSummaryPayload{MediaID: "nope"}, svc)
	if err == nil {
		t.Fatal("expected error for a broken id")
	}
	if svc.Called {
		t.Error("usecase should not run for a broken id")
	}
}
