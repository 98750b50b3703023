package media

import (
	"log"
	"os"
	"strings"

	"github.com/fhuszti/transcripts-ms-go/internal/model"
)

// LoadWorldBackground reads the optional shared background document given to
// every summarisation prompt. A missing or unreadable file just means no
// background.
func LoadWorldBackground(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("warning: could not read world background file %q: %v", path, err)
		return ""
	}
	return strings.TrimSpace(string(data))
}

// buildContextInfo assembles the prompt preamble from the record's own
// metadata plus the shared background. The background is marked as reference
// material so the model does not summarise it.
func buildContextInfo(m *model.Media, background string) string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString("Title: " + m.Title + "\n")
	}
	if m.Description != "" {
		b.WriteString("Description: " + m.Description + "\n")
	}
	if background != "" {
		b.WriteString("Background information (for reference only, do not summarise it):\n")
		b.WriteString(background + "\n")
	}
	return b.String()
}
