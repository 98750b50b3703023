package validation

import (
	"encoding/json"
	"testing"
)

func TestValidateStructAndErrorsToJson(t *testing.T) {
	type Input struct {
		Title string   `validate:"required,max=255"              json:"title"`
		IDs   []string `validate:"min=1,dive,uuid"               json:"ids"`
		Type  string   `validate:"omitempty,oneof=GENERAL QA"    json:"summary_type"`
	}

	tests := []struct {
		name        string
		in          Input
		wantErr     bool
		wantJsonMap map[string]string
	}{
		{
			name:    "success",
			in:      Input{Title: "demo", IDs: []string{"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}, Type: "QA"},
			wantErr: false,
		},
		{
			name:    "missing title",
			in:      Input{Title: "", IDs: []string{"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}},
			wantErr: true,
			wantJsonMap: map[string]string{
				"title": "required",
			},
		},
		{
			name:    "empty ids and bad type",
			in:      Input{Title: "demo", IDs: []string{}, Type: "BULLET_SOUP"},
			wantErr: true,
			wantJsonMap: map[string]string{
				"ids":          "min",
				"summary_type": "oneof",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			errsJSON, jerr := ErrorsToJson(err)
			if jerr != nil {
				t.Fatalf("ErrorsToJson() returned unexpected error: %v", jerr)
			}

			var got map[string]string
			if uerr := json.Unmarshal([]byte(errsJSON), &got); uerr != nil {
				t.Fatalf("errors payload not json: %v", uerr)
			}
			for field, tag := range tt.wantJsonMap {
				if got[field] != tag {
					t.Errorf("field %q = %q; want %q (full: %s)", field, got[field], tag, errsJSON)
				}
			}
		})
	}
}

func TestValidationUsesJSONFieldNames(t *testing.T) {
	type Input struct {
		OriginalKey string `validate:"required" json:"original_key"`
	}

	err := ValidateStruct(Input{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	errsJSON, jerr := ErrorsToJson(err)
	if jerr != nil {
		t.Fatalf("ErrorsToJson() returned unexpected error: %v", jerr)
	}

	var got map[string]string
	if uerr := json.Unmarshal([]byte(errsJSON), &got); uerr != nil {
		t.Fatalf("errors payload not json: %v", uerr)
	}
	if _, ok := got["original_key"]; !ok {
		t.Errorf("expected json tag name in errors, got %s", errsJSON)
	}
}
