package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Placeholders returned instead of an error when the ASR payload carries no
// usable sentences. Callers must check for these explicitly.
const (
	PlaceholderNoResult      = "No transcription result available"
	PlaceholderNoTranscripts = "No transcripts available"
	PlaceholderNoSentences   = "No sentences available"
)

// payload mirrors the subset of the ASR transcript document we consume:
// {transcripts:[{sentences:[{speaker_id, text}, ...]}]}
type payload struct {
	Transcripts []struct {
		Sentences []sentence `json:"sentences"`
	} `json:"transcripts"`
}

type sentence struct {
	SpeakerID json.RawMessage `json:"speaker_id"`
	Text      string          `json:"text"`
}

// speakerKey normalises the speaker identifier, which some payloads carry as
// a number and others as a string.
func (s sentence) speakerKey() string {
	var asString string
	if err := json.Unmarshal(s.SpeakerID, &asString); err == nil {
		return asString
	}
	return string(s.SpeakerID)
}

// Format merges diarised sentence events into a compact speaker-labeled text.
// Speaker ids map to "speaker 1", "speaker 2", ... in order of first
// appearance; consecutive sentences from the same speaker join into one line;
// empty sentences are skipped. A missing or malformed payload yields a fixed
// placeholder, never an error.
func Format(raw json.RawMessage) string {
	if len(raw) == 0 {
		return PlaceholderNoResult
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil || len(p.Transcripts) == 0 {
		return PlaceholderNoTranscripts
	}

	sentences := p.Transcripts[0].Sentences
	if len(sentences) == 0 {
		return PlaceholderNoSentences
	}

	labels := make(map[string]string)
	var lines []string
	var currentSpeaker, currentText string
	started := false

	for _, s := range sentences {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}

		key := s.speakerKey()
		if _, ok := labels[key]; !ok {
			labels[key] = fmt.Sprintf("speaker %d", len(labels)+1)
		}

		if started && key == currentSpeaker {
			currentText += " " + text
			continue
		}

		if started {
			lines = append(lines, labels[currentSpeaker]+": "+currentText)
		}
		currentSpeaker = key
		currentText = text
		started = true
	}

	if !started {
		// every sentence was empty
		return PlaceholderNoSentences
	}
	lines = append(lines, labels[currentSpeaker]+": "+currentText)

	return strings.Join(lines, "\n")
}
