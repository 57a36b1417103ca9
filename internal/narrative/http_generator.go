// Package narrative implements an HTTP-backed domain.NarrativeGenerator: it
// posts a system/user prompt pair to a configured endpoint and returns the
// raw JSON body for the caller to validate against its own schema.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Generator is an HTTP-backed domain.NarrativeGenerator.
type Generator struct {
	logger     *zap.Logger
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// New builds an HTTP narrative generator against the given endpoint.
func New(logger *zap.Logger, endpoint, apiKey string, timeout time.Duration) *Generator {
	return &Generator{
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

type generateRequest struct {
	SystemPrompt string `json:"system_prompt"`
	UserPrompt   string `json:"user_prompt"`
}

// GenerateJSON posts the prompt pair and returns the raw response body. The
// caller is responsible for validating the JSON against its own schema; this
// generator makes no assumption about the narrative contract.
func (g *Generator) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) ([]byte, error) {
	body, err := json.Marshal(generateRequest{SystemPrompt: systemPrompt, UserPrompt: userPrompt})
	if err != nil {
		return nil, fmt.Errorf("marshal narrative request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build narrative request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn("narrative generator request failed", zap.Error(err))
		return nil, fmt.Errorf("narrative generator request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read narrative response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("narrative generator returned status %d", resp.StatusCode)
	}

	return respBody, nil
}
