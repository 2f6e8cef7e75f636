package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

// Client wraps the OpenAI chat completion API for the two text tasks the
// service performs: field extraction and summarization. Both fail closed to
// placeholder values, so neither ever returns an error to the caller.
type Client struct {
	api   *openai.Client
	model string
	names []string
	log   zerolog.Logger
}

// NewClient initializes a chat completion client. names is the closed
// whitelist of responsible-party names the extractor may return.
func NewClient(apiKey, model string, names []string, logger zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("name whitelist is required")
	}
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
		names: names,
		log:   logger,
	}, nil
}

// chat runs one completion with a system instruction and a single user
// message, returning the raw reply text.
func (c *Client) chat(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
