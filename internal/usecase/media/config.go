package media

import "time"

// DownloadURLTTL is how long presigned download links stay valid; cached
// media details expire together with their links.
const DownloadURLTTL = 1 * time.Hour

// BacklogCutoff is how old an unprocessed record must be before the backlog
// sweep picks it up.
const BacklogCutoff = 1 * time.Hour

// MaxTranscriptCharsForSubtitle caps how much transcript text goes into the
// subtitle prompt.
const MaxTranscriptCharsForSubtitle = 6000

// MaxSubtitleLen is the hard display limit for the subtitle line; longer
// replies are truncated with an ellipsis.
const MaxSubtitleLen = 180
