package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shunsk-dev/voice-order-memo/store"
)

type uploadResponse struct {
	FileID     string  `json:"file_id"`
	Transcript string  `json:"transcript"`
	Summary    string  `json:"summary"`
	Name       string  `json:"担当者"`
	Quantity   int     `json:"発注数"`
	LineUserID *string `json:"line_user_id"`
	Status     string  `json:"通知ステータス"`
}

// handleUpload runs the whole pipeline for one memo. Only a staging-write
// or transcription failure aborts the request; extraction, summarization
// and notification degrade to placeholder values and the record is still
// appended, carrying the final notification status.
func (s *Server) handleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "音声ファイルが必要です"})
	}

	fileID := uuid.New().String()
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".webm"
	}
	if err := os.MkdirAll(s.cfg.UploadDir, 0755); err != nil {
		s.log.Error().Err(err).Msg("create upload dir")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("ファイル保存に失敗: %v", err)})
	}
	audioPath := filepath.Join(s.cfg.UploadDir, fileID+ext)
	if err := c.SaveFile(fileHeader, audioPath); err != nil {
		s.log.Error().Err(err).Str("path", audioPath).Msg("stage upload")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("ファイル保存に失敗: %v", err)})
	}

	ctx := c.UserContext()

	transcript, err := s.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		s.log.Error().Err(err).Str("file_id", fileID).Msg("transcription failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("文字起こしに失敗: %v", err)})
	}

	extraction := s.extractor.Extract(ctx, transcript)
	summary := s.summarizer.Summarize(ctx, transcript)

	records, err := s.records.ReadAll()
	if err != nil {
		// resolution degrades to not-found, the upload itself goes on
		s.log.Warn().Err(err).Msg("read records for recipient resolution")
		records = nil
	}
	userID, found := store.FindRecipient(records, extraction.Name)

	status := store.StatusNotNotified
	if found && s.notifier != nil {
		message := fmt.Sprintf("担当者: %s\n発注数: %d\n要約: %s", extraction.Name, extraction.Quantity, summary)
		if err := s.notifier.Push(ctx, userID, message); err != nil {
			s.log.Warn().Err(err).Str("to", userID).Msg("line notification failed")
			status = store.StatusNotifyFailed
		} else {
			status = store.StatusNotified
		}
	}

	recordID := store.Unknown
	if found {
		recordID = userID
	}
	rec := store.Record{
		ID:         recordID,
		Name:       extraction.Name,
		Quantity:   extraction.Quantity,
		Transcript: transcript,
		Summary:    summary,
		Status:     status,
	}
	if err := s.records.Append(rec); err != nil {
		s.log.Error().Err(err).Str("file_id", fileID).Msg("append record")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("記録の保存に失敗: %v", err)})
	}

	s.log.Info().
		Str("file_id", fileID).
		Str("担当者", extraction.Name).
		Int("発注数", extraction.Quantity).
		Str("status", status).
		Msg("upload processed")

	var lineUserID *string
	if found {
		lineUserID = &userID
	}
	return c.JSON(uploadResponse{
		FileID:     fileID,
		Transcript: transcript,
		Summary:    summary,
		Name:       extraction.Name,
		Quantity:   extraction.Quantity,
		LineUserID: lineUserID,
		Status:     status,
	})
}

// handleData returns every stored record in insertion order. An empty or
// header-only table yields an empty list, never an error.
func (s *Server) handleData(c *fiber.Ctx) error {
	records, err := s.records.ReadAll()
	if err != nil {
		s.log.Error().Err(err).Msg("read records")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "データの読み込みに失敗しました"})
	}
	if records == nil {
		records = []store.Record{}
	}
	return c.JSON(fiber.Map{"data": records})
}
