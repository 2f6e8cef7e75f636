package server

import (
	"context"

	"github.com/shunsk-dev/voice-order-memo/llm"
	"github.com/shunsk-dev/voice-order-memo/store"
)

// Transcriber converts a staged audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Extractor pulls the responsible party and order quantity out of a
// transcript. Implementations fail closed to {不明, 0} and never error.
type Extractor interface {
	Extract(ctx context.Context, transcript string) llm.ExtractionResult
}

// Summarizer produces a short summary of a transcript, falling back to a
// fixed placeholder on failure.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) string
}

// Notifier delivers one text message to a LINE user.
type Notifier interface {
	Push(ctx context.Context, userID, text string) error
}

// RecordStore is the persisted table of processed uploads.
type RecordStore interface {
	Append(rec store.Record) error
	ReadAll() ([]store.Record, error)
}
