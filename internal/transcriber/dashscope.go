package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

var (
	ErrInvalidAssetURL       = errors.New("transcriber: asset URL must be absolute http(s)")
	ErrSubmitFailed          = errors.New("transcriber: task submission failed")
	ErrPollTimeout           = errors.New("transcriber: polling timed out")
	ErrRemoteTaskFailed      = errors.New("transcriber: remote task failed")
	ErrTranscriptFetchFailed = errors.New("transcriber: transcript fetch failed")
)

const asrModel = "paraformer-v2"

// task statuses reported by the remote service
const (
	statusPending   = "PENDING"
	statusRunning   = "RUNNING"
	statusSucceeded = "SUCCEEDED"
)

// Config carries the settings for the DashScope ASR client.
type Config struct {
	APIKey        string
	APIBase       string
	MaxAttempts   int
	Interval      time.Duration
	LanguageHints []string
	// HTTPClient overrides the default client; used by tests.
	HTTPClient *http.Client
}

// Client drives one async transcription job: submit, poll at a fixed
// interval until a terminal state or the attempt budget runs out, then fetch
// the transcript document from the server-supplied URL.
type Client struct {
	httpc       *http.Client
	apiKey      string
	apiBase     string
	maxAttempts int
	interval    time.Duration
	langHints   []string
}

// compile-time check: *Client must satisfy port.Transcriber
var _ port.Transcriber = (*Client)(nil)

func NewClient(cfg Config) *Client {
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		httpc:       httpc,
		apiKey:      cfg.APIKey,
		apiBase:     strings.TrimSuffix(cfg.APIBase, "/"),
		maxAttempts: cfg.MaxAttempts,
		interval:    cfg.Interval,
		langHints:   cfg.LanguageHints,
	}
}

type submitRequest struct {
	Model string `json:"model"`
	Input struct {
		FileURLs []string `json:"file_urls"`
	} `json:"input"`
	Parameters struct {
		ChannelID          []int    `json:"channel_id"`
		LanguageHints      []string `json:"language_hints"`
		DiarizationEnabled bool     `json:"diarization_enabled"`
	} `json:"parameters"`
}

type submitResponse struct {
	Output struct {
		TaskID string `json:"task_id"`
	} `json:"output"`
}

type pollResponse struct {
	Output struct {
		TaskStatus string `json:"task_status"`
		Results    []struct {
			SubtaskStatus    string `json:"subtask_status"`
			TranscriptionURL string `json:"transcription_url"`
		} `json:"results"`
	} `json:"output"`
}

// Transcribe runs the whole job and returns the raw transcript document.
func (c *Client) Transcribe(ctx context.Context, assetURL string) (json.RawMessage, error) {
	taskID, err := c.Submit(ctx, assetURL)
	if err != nil {
		return nil, err
	}
	logger.Infof(ctx, "submitted transcription task %q for %q", taskID, assetURL)

	return c.Poll(ctx, taskID)
}

// Submit registers the transcription job and returns its task id. The asset
// must be reachable via an absolute http(s) URL; anything else is rejected
// before the remote service is called.
func (c *Client) Submit(ctx context.Context, assetURL string) (string, error) {
	u, err := url.Parse(assetURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetURL, assetURL)
	}

	var req submitRequest
	req.Model = asrModel
	req.Input.FileURLs = []string{assetURL}
	req.Parameters.ChannelID = []int{0}
	req.Parameters.LanguageHints = c.langHints
	req.Parameters.DiarizationEnabled = true

	body, status, err := c.post(ctx, c.apiBase+"/services/audio/asr/transcription", req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrSubmitFailed, status, truncateBody(body))
	}

	var resp submitResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Output.TaskID == "" {
		return "", fmt.Errorf("%w: no task id in response: %s", ErrSubmitFailed, truncateBody(body))
	}
	return resp.Output.TaskID, nil
}

// Poll checks the task at a fixed interval. PENDING/RUNNING consume one
// attempt each; SUCCEEDED triggers the secondary transcript fetch; any other
// terminal status aborts immediately. Exceeding the attempt budget without a
// terminal state yields ErrPollTimeout.
func (c *Client) Poll(ctx context.Context, taskID string) (json.RawMessage, error) {
	taskURL := c.apiBase + "/tasks/" + taskID

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		logger.Debugf(ctx, "polling task %q (attempt %d/%d)", taskID, attempt, c.maxAttempts)

		body, status, err := c.post(ctx, taskURL, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: poll request: %v", ErrRemoteTaskFailed, err)
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("%w: poll status %d: %s", ErrRemoteTaskFailed, status, truncateBody(body))
		}

		var resp pollResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("%w: invalid poll response: %v", ErrRemoteTaskFailed, err)
		}

		switch resp.Output.TaskStatus {
		case statusSucceeded:
			return c.fetchTranscript(ctx, resp)
		case statusPending, statusRunning:
			if attempt == c.maxAttempts {
				break // budget exhausted, fall out of the loop
			}
			select {
			case <-time.After(c.interval):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		default:
			return nil, fmt.Errorf("%w: task %q ended with status %q", ErrRemoteTaskFailed, taskID, resp.Output.TaskStatus)
		}
	}

	return nil, fmt.Errorf("%w: task %q still not terminal after %d attempts", ErrPollTimeout, taskID, c.maxAttempts)
}

func (c *Client) fetchTranscript(ctx context.Context, resp pollResponse) (json.RawMessage, error) {
	results := resp.Output.Results
	if len(results) == 0 || results[0].SubtaskStatus != statusSucceeded {
		return nil, fmt.Errorf("%w: task succeeded but its subtask did not", ErrRemoteTaskFailed)
	}
	transcriptionURL := results[0].TranscriptionURL
	if transcriptionURL == "" {
		return nil, fmt.Errorf("%w: no transcription URL in poll response", ErrRemoteTaskFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, transcriptionURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscriptFetchFailed, err)
	}
	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscriptFetchFailed, err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscriptFetchFailed, err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrTranscriptFetchFailed, res.StatusCode, truncateBody(body))
	}

	return body, nil
}

// post sends an authenticated JSON POST and returns the response body and
// status code. A nil payload sends an empty body (the poll endpoint).
func (c *Client) post(ctx context.Context, endpoint string, payload any) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-DashScope-Async", "enable")

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, res.StatusCode, nil
}

func truncateBody(body []byte) string {
	const max = 500
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
