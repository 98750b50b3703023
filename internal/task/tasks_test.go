package task

import (
	"testing"

	"github.com/hibiken/asynq"
)

func TestProcessMediaTask(t *testing.T) {
	tk, err := NewProcessMediaTask("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Type() != TypeProcessMedia {
		t.Errorf("type = %q; want %q", tk.Type(), TypeProcessMedia)
	}

	p, err := ParseProcessMediaPayload(tk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.MediaID != "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee" {
		t.Errorf("media id = %q", p.MediaID)
	}
}

func TestGenerateSummaryTask(t *testing.T) {
	tk, err := NewGenerateSummaryTask("some-id", "KEY_POINTS", "dashscope", "qwen-max")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Type() != TypeGenerateSummary {
		t.Errorf("type = %q; want %q", tk.Type(), TypeGenerateSummary)
	}

	p, err := ParseGenerateSummaryPayload(tk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.MediaID != "some-id" || p.SummaryType != "KEY_POINTS" || p.Provider != "dashscope" || p.Model != "qwen-max" {
		t.Errorf("payload = %+v", p)
	}
}

func TestParsePayload_Broken(t *testing.T) {
	broken := asynq.NewTask(TypeProcessMedia, []byte("{not json"))
	if _, err := ParseProcessMediaPayload(broken); err == nil {
		t.Error("expected error for a broken payload")
	}
	if _, err := ParseGenerateSummaryPayload(broken); err == nil {
		t.Error("expected error for a broken payload")
	}
}
