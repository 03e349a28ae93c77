// Package upload is a thin client for the Runware model-upload API: it
// submits task envelopes and consumes the newline-delimited JSON status
// stream the endpoint answers with.
package upload

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the fixed upload endpoint.
const DefaultBaseURL = "https://api.runware.ai/v1"

// APIKeyEnv supplies the credential when none is passed explicitly.
const APIKeyEnv = "RUNWARE_API_KEY"

// DefaultTimeout covers model uploads, which can take minutes.
const DefaultTimeout = 5 * time.Minute

// ErrTimeout reports that the request hit the client timeout. It is distinct
// from other transport failures so the operator can tell the two apart; no
// retry happens either way.
var ErrTimeout = errors.New("upload request timed out")

// Client talks to the upload API. One blocking request per call.
type Client struct {
	BaseURL string
	Out     io.Writer

	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client from an explicit API key or, when empty, the
// RUNWARE_API_KEY environment variable. A missing credential is a
// construction-time error: no request envelope is ever built without one.
func NewClient(apiKey string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(APIKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key not provided: set %s or pass one explicitly", APIKeyEnv)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    DefaultBaseURL,
		Out:        os.Stdout,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// StatusEvent is one status record from the response stream.
type StatusEvent struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	AIR     string `json:"air"`
}

// line is one newline-delimited response event; its data array is optional.
type line struct {
	Data []StatusEvent `json:"data"`
}

// UploadCheckpoint submits a checkpoint model for upload and returns the
// accumulated status events.
func (c *Client) UploadCheckpoint(m Model) ([]StatusEvent, error) {
	task := m.task("checkpoint")
	return c.send([]Task{task})
}

// UploadLoRA submits an adaptation-weights (LoRA) model.
func (c *Client) UploadLoRA(m Model) ([]StatusEvent, error) {
	task := m.task("lora")
	return c.send([]Task{task})
}

// UploadControlNet submits a conditioning (ControlNet) model. conditioning
// names the control signal, e.g. "canny" or "depth".
func (c *Client) UploadControlNet(m Model, conditioning string) ([]StatusEvent, error) {
	if conditioning == "" {
		return nil, errors.New("conditioning type is required for a ControlNet upload")
	}
	task := m.task("controlnet")
	task.Conditioning = conditioning
	return c.send([]Task{task})
}

// send posts the task envelopes and reads the status stream to completion.
func (c *Client) send(tasks []Task) ([]StatusEvent, error) {
	body, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("cannot encode upload request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cannot build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	for _, t := range tasks {
		fmt.Fprintf(c.Out, "Uploading %s %q... Task UUID: %s\n", t.Category, t.Name, t.TaskUUID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, c.httpClient.Timeout)
		}
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("upload rejected: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var events []StatusEvent
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var l line
		if err := json.Unmarshal([]byte(text), &l); err != nil || len(l.Data) == 0 {
			// Not a data event; surface the raw line.
			fmt.Fprintf(c.Out, "Received: %s\n", text)
			continue
		}
		for _, ev := range l.Data {
			events = append(events, ev)
			fmt.Fprintf(c.Out, "[%s] %s (AIR: %s)\n", strings.ToUpper(ev.Status), ev.Message, ev.AIR)
		}
	}
	if err := scanner.Err(); err != nil {
		if isTimeout(err) {
			return events, fmt.Errorf("%w after %s", ErrTimeout, c.httpClient.Timeout)
		}
		return events, fmt.Errorf("error reading upload response: %w", err)
	}

	return events, nil
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// newTaskUUID is swapped out in tests for deterministic envelopes.
var newTaskUUID = func() string { return uuid.NewString() }
