package stt

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

// WhisperClient transcribes staged audio files through the OpenAI audio
// transcription endpoint.
type WhisperClient struct {
	api   *openai.Client
	model string
	log   zerolog.Logger
}

// NewWhisperClient initializes a transcription client for the given model.
func NewWhisperClient(apiKey, model string, logger zerolog.Logger) (*WhisperClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperClient{
		api:   openai.NewClient(apiKey),
		model: model,
		log:   logger,
	}, nil
}

// Transcribe sends the audio file at audioPath to the transcription service
// and returns the recognized text.
func (c *WhisperClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", audioPath, err)
	}
	text := strings.TrimSpace(resp.Text)
	c.log.Debug().Str("file", audioPath).Int("chars", len(text)).Msg("transcription complete")
	return text, nil
}
