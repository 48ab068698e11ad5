// Package ollama is the client for the text-generation endpoint. It
// sends single-shot prompts and chat message lists and hands back raw
// model text; the JSON the model is asked for is isolated separately
// by ExtractJSON, since model output is not a trusted source.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is used when OLLAMA_URL is not configured.
	DefaultBaseURL = "http://localhost:11434"
	// DefaultModel is used when OLLAMA_MODEL is not configured.
	DefaultModel = "gemma3"
)

// ServiceError reports a transport or protocol failure talking to the
// generation endpoint.
type ServiceError struct {
	Op     string
	Status int
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("ollama %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("ollama %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Client talks to an Ollama-compatible endpoint. No retries and no
// streaming; the only timeout is the transport default below.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
	log     *zap.Logger
}

// New creates a client for the given base URL and model, falling back
// to the defaults when either is empty.
func New(baseURL, model string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		// large CVs on slow local models take a while
		http: &http.Client{Timeout: 10 * time.Minute},
		log:  log,
	}
}

// Generate sends a single prompt and returns the raw model text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := c.post(ctx, "generate", "/api/generate", generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &ServiceError{Op: "generate", Err: fmt.Errorf("decode response: %w", err)}
	}
	if resp.Error != "" {
		return "", &ServiceError{Op: "generate", Err: fmt.Errorf("model error: %s", resp.Error)}
	}
	return resp.Response, nil
}

// Chat sends a system context and a user message and returns the model
// reply with Markdown code fences stripped best-effort.
func (c *Client) Chat(ctx context.Context, system, user string) (string, error) {
	body, err := c.post(ctx, "chat", "/api/chat", chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &ServiceError{Op: "chat", Err: fmt.Errorf("decode response: %w", err)}
	}
	if resp.Error != "" {
		return "", &ServiceError{Op: "chat", Err: fmt.Errorf("model error: %s", resp.Error)}
	}

	content := resp.Message.Content
	if content == "" {
		content = resp.Response
	}
	return StripFences(content), nil
}

func (c *Client) post(ctx context.Context, op, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &ServiceError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, &ServiceError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ServiceError{Op: op, Err: fmt.Errorf("call generation endpoint: %w", err)}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	c.log.Debug("generation endpoint call",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
		zap.Int("response_bytes", len(body)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}
	return body, nil
}

var fenceOpen = regexp.MustCompile("```[a-zA-Z]*[\r\n]?")

// StripFences removes Markdown code-fence markers from chat output.
func StripFences(s string) string {
	s = fenceOpen.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
