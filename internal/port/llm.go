package port

import (
	"context"
	"encoding/json"
)

// SummaryType selects which prompt template a summarisation uses. Unknown
// values fall back to SummaryGeneral.
type SummaryType string

const (
	SummaryGeneral        SummaryType = "GENERAL"
	SummaryGeneralDetail  SummaryType = "GENERAL_DETAIL"
	SummaryKeyPoints      SummaryType = "KEY_POINTS"
	SummaryMeetingMinutes SummaryType = "MEETING_MINUTES"
	SummaryInterview      SummaryType = "INTERVIEW"
	SummaryQA             SummaryType = "QA"
)

func (t SummaryType) IsValid() bool {
	switch t {
	case SummaryGeneral, SummaryGeneralDetail, SummaryKeyPoints,
		SummaryMeetingMinutes, SummaryInterview, SummaryQA:
		return true
	}
	return false
}

type SummarizeInput struct {
	Text        string
	Type        SummaryType
	ContextInfo string
	// Model overrides the provider default when it is in the provider's
	// allow-list; otherwise the default is used silently.
	Model string
}

type SummarizeOutput struct {
	Summary     string
	RawResponse json.RawMessage
	ModelUsed   string
}

// Failed reports whether the call was attempted but did not produce a
// summary. Summarize never returns an error for ordinary remote failures;
// instead the output carries a failure message and no raw response.
func (o SummarizeOutput) Failed() bool {
	return o.RawResponse == nil || o.Summary == ""
}

// LLMClient is the uniform contract over summarisation providers.
type LLMClient interface {
	Provider() string
	Summarize(ctx context.Context, in SummarizeInput) SummarizeOutput
	// Complete sends one raw prompt without any summary template, with the
	// same never-errors semantics as Summarize.
	Complete(ctx context.Context, prompt, model string) SummarizeOutput
	// HealthCheck sends one fixed probe prompt and reports whether a
	// non-empty textual reply came back, along with the reply or a reason.
	HealthCheck(ctx context.Context) (bool, string)
}

// LLMClientGetter resolves a provider name to a configured client. It fails
// when the provider is unknown or its credential is missing.
type LLMClientGetter func(provider string) (LLMClient, error)
