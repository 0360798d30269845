package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lexorigin/internal/domain"
)

const generationTemperature = 0.1

// analysisFormat is the JSON schema sent to Ollama's structured-output mode
// for the one call site that expects a schema-conforming object. Conformance
// is still parsed defensively downstream.
var analysisFormat = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"summary": map[string]interface{}{
			"type": "string",
		},
		"controversy_level": map[string]interface{}{
			"type": "string",
			"enum": []string{"Low", "Medium", "High"},
		},
		"consensus_color": map[string]interface{}{
			"type": "string",
			"enum": []string{"green", "yellow", "red"},
		},
		"citations": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"speaker":   map[string]interface{}{"type": "string"},
					"party":     map[string]interface{}{"type": "string"},
					"date":      map[string]interface{}{"type": "string"},
					"text":      map[string]interface{}{"type": "string"},
					"sentiment": map[string]interface{}{"type": "number"},
				},
				"required": []string{"speaker", "party"},
			},
		},
		"key_arguments": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
	},
	"required": []string{"summary", "controversy_level", "consensus_color"},
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string                 `json:"model"`
	Messages  []chatMessage          `json:"messages"`
	Stream    bool                   `json:"stream"`
	KeepAlive int                    `json:"keep_alive"`
	Format    map[string]interface{} `json:"format,omitempty"`
	Options   map[string]interface{} `json:"options,omitempty"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Done bool `json:"done"`
}

// Generator sends chat prompts to Ollama and returns the assistant message,
// optionally constrained to the analysis schema.
type Generator struct {
	BaseURL   string
	Model     string
	MaxTokens int
	Client    *http.Client
}

// NewGenerator constructs a generator for the given endpoint and model.
func NewGenerator(baseURL, model string, maxTokens, timeoutSeconds int) *Generator {
	timeout := 120 * time.Second
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return &Generator{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Model:     model,
		MaxTokens: maxTokens,
		Client:    &http.Client{Timeout: timeout},
	}
}

// Chat sends the messages and returns the free-text assistant reply.
func (g *Generator) Chat(ctx context.Context, messages []domain.Message) (*domain.LLMResponse, error) {
	return g.chat(ctx, messages, nil)
}

// ChatStructured sends the messages with the analysis schema attached as the
// response format.
func (g *Generator) ChatStructured(ctx context.Context, messages []domain.Message) (*domain.LLMResponse, error) {
	return g.chat(ctx, messages, analysisFormat)
}

func (g *Generator) chat(ctx context.Context, messages []domain.Message, format map[string]interface{}) (*domain.LLMResponse, error) {
	msgs := make([]chatMessage, len(messages))
	for i, m := range messages {
		msgs[i] = chatMessage{Role: m.Role, Content: m.Content}
	}

	reqBody := chatRequest{
		Model:     g.Model,
		Messages:  msgs,
		Stream:    false,
		KeepAlive: -1,
		Format:    format,
		Options: map[string]interface{}{
			"temperature": generationTemperature,
		},
	}
	if g.MaxTokens > 0 {
		reqBody.Options["num_predict"] = g.MaxTokens
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/api/chat", g.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call chat endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("chat endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}

	return &domain.LLMResponse{
		Text: strings.TrimSpace(chatResp.Message.Content),
		Done: chatResp.Done,
	}, nil
}

// Version returns the wrapped model name.
func (g *Generator) Version() string {
	return g.Model
}

var _ domain.LLMClient = (*Generator)(nil)
