package llm

import (
	"strings"

	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

// systemPrompt frames every summarisation call.
const systemPrompt = "You are a professional content summarisation assistant. You produce faithful, well-structured summaries of spoken-word transcripts."

// promptTemplates maps a summary type to its instruction template. Templates
// carry two slots: {context_info} and {text}.
var promptTemplates = map[port.SummaryType]string{
	port.SummaryGeneral: `{context_info}Summarise the following transcript in a concise paragraph. Capture the main topic and the key conclusions, and leave out filler and small talk.

Transcript:
{text}`,

	port.SummaryGeneralDetail: `{context_info}Write a detailed summary of the following transcript. Cover every major topic discussed, preserve the order in which they came up, and keep concrete facts, names and figures.

Transcript:
{text}`,

	port.SummaryKeyPoints: `{context_info}Extract the key points from the following transcript as a bullet list. One point per line, most important first. Do not add commentary.

Transcript:
{text}`,

	port.SummaryMeetingMinutes: `{context_info}Turn the following transcript into meeting minutes. Include: attendees (by speaker label), topics discussed, decisions made, and action items with owners where they can be inferred.

Transcript:
{text}`,

	port.SummaryInterview: `{context_info}Summarise the following interview transcript. Identify the interviewer and interviewee by speaker label, then summarise each question asked and the substance of the answer given.

Transcript:
{text}`,

	port.SummaryQA: `{context_info}Rewrite the following transcript as a question-and-answer digest. Pair each question with a condensed version of its answer. Skip exchanges that carry no information.

Transcript:
{text}`,
}

// subtitleTemplate produces a one-line teaser for a media record.
const subtitleTemplate = `{context_info}Write a single short teaser sentence for the content below, suitable as a subtitle on a listing page. Plain text only, no quotes, no markdown.

Content:
{text}`

// BuildPrompt renders the template for the given summary type. An unknown
// type falls back to the general template.
func BuildPrompt(summaryType port.SummaryType, contextInfo, text string) string {
	tpl, ok := promptTemplates[summaryType]
	if !ok {
		tpl = promptTemplates[port.SummaryGeneral]
	}
	return render(tpl, contextInfo, text)
}

// BuildSubtitlePrompt renders the subtitle teaser template.
func BuildSubtitlePrompt(contextInfo, text string) string {
	return render(subtitleTemplate, contextInfo, text)
}

func render(tpl, contextInfo, text string) string {
	if contextInfo != "" && !strings.HasSuffix(contextInfo, "\n") {
		contextInfo += "\n\n"
	}
	out := strings.ReplaceAll(tpl, "{context_info}", contextInfo)
	return strings.ReplaceAll(out, "{text}", text)
}
