package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ventia/ventia/internal/config"
)

const groqChatURL = "https://api.groq.com/openai/v1/chat/completions"

var ErrEmptyCompletion = errors.New("completion returned no content")

type Groq struct {
	apiKey string
	model  string
	client *http.Client
	log    *zap.Logger
}

func NewGroq(cfg config.GroqConfig, log *zap.Logger) *Groq {
	return &Groq{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log.Named("completion.groq"),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *Groq) ShortDescription(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(
		"Condense the following product description into one sales sentence under 20 words. Reply with the sentence only.\n\n%s",
		description,
	)

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqChatURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion: groq returned %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(strings.Trim(parsed.Choices[0].Message.Content, `"`))
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
