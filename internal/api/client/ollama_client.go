package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bz888/tavish/internal/config"
	"github.com/bz888/tavish/internal/logger"
	"github.com/tidwall/gjson"
)

const (
	// NoClearResponse is returned when a 200 body carries none of the known fields.
	NoClearResponse = "AI did not provide a clear response."

	apiErrorFormat     = "AI API Error: Status %d"
	connectErrorPrefix = "Failed to connect to AI: "
)

var ErrNoResponseField = errors.New("no response field in body")

// responsePaths are probed in order; the first present one wins.
var responsePaths = []string{"response", "message.content", "text"}

// OllamaClient represents a client for the Ollama API
type OllamaClient struct {
	Client
	model  string
	system string
	log    *logger.Logger
}

// NewOllamaClient creates a new Ollama API client
func NewOllamaClient(cfg *config.Config, log *logger.Logger) (*OllamaClient, error) {
	c, err := NewClient(ClientConfig{
		Endpoint:   cfg.Endpoint,
		ModelsPath: "/api/tags",
		Timeout:    cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return &OllamaClient{
		Client: *c,
		model:  cfg.Model,
		system: cfg.SystemPrompt,
		log:    log,
	}, nil
}

// Ask sends prompt to the model and always returns a displayable string:
// the model's answer, the fallback text, or an error line.
func (c *OllamaClient) Ask(ctx context.Context, prompt string) string {
	text, err := c.Generate(ctx, &GenerateRequest{
		Model:  c.model,
		System: c.system,
		Prompt: prompt,
		Stream: false,
	})

	var statusErr *StatusError
	switch {
	case err == nil:
		return text
	case errors.Is(err, ErrNoResponseField):
		c.log.Warn("Ollama response did not contain 'response', 'message.content' or 'text':", err)
		return NoClearResponse
	case errors.As(err, &statusErr):
		c.log.Error("Ollama API returned non-200 status:", statusErr.Code, "-", statusErr.Body)
		return fmt.Sprintf(apiErrorFormat, statusErr.Code)
	default:
		c.log.Error("Error communicating with Ollama API:", err)
		return connectErrorPrefix + err.Error()
	}
}

// Generate performs one blocking generate call and extracts the answer text.
func (c *OllamaClient) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GetGenerateURL(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return "", &StatusError{Code: response.StatusCode, Body: string(raw)}
	}

	return extractResponse(raw)
}

func extractResponse(raw []byte) (string, error) {
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("malformed JSON response: %.200s", raw)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return "", fmt.Errorf("response is not a JSON object: %.200s", raw)
	}

	for _, path := range responsePaths {
		if i := strings.LastIndexByte(path, '.'); i > 0 {
			if parent := doc.Get(path[:i]); parent.Exists() && !parent.IsObject() {
				return "", fmt.Errorf("field %q is not an object: %s", path[:i], parent.Raw)
			}
		}
		field := doc.Get(path)
		if !field.Exists() {
			continue
		}
		switch field.Type {
		case gjson.String, gjson.Number, gjson.True, gjson.False:
			return strings.TrimSpace(field.String()), nil
		default:
			return "", fmt.Errorf("field %q is not a string: %s", path, field.Raw)
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNoResponseField, raw)
}

// ListModels fetches the models installed in the Ollama server.
func (c *OllamaClient) ListModels(ctx context.Context) ([]OllamaModel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GetModelsURL(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("failed to fetch models: " + resp.Status)
	}

	var response ModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode models: %w", err)
	}

	return response.Models, nil
}

// ModelNames returns the names of the installed models.
func (c *OllamaClient) ModelNames(ctx context.Context) ([]string, error) {
	models, err := c.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(models))
	for i, model := range models {
		names[i] = model.Name
	}
	return names, nil
}

// CheckAvailability reports whether the server is reachable and has the
// configured model installed.
func (c *OllamaClient) CheckAvailability(ctx context.Context) error {
	models, err := c.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("ollama server not available: %w", err)
	}
	if !HasModel(models, c.model) {
		return fmt.Errorf("model %q is not installed, run `ollama pull %s`", c.model, c.model)
	}
	return nil
}

// HasModel matches name against installed models, treating a missing tag as ":latest".
func HasModel(models []OllamaModel, name string) bool {
	for _, model := range models {
		if model.Name == name || model.Name == name+":latest" {
			return true
		}
	}
	return false
}
