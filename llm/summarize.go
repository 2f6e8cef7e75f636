package llm

import (
	"context"
	"fmt"
	"strings"
)

// SummaryFallback is returned whenever summarization fails.
const SummaryFallback = "要約に失敗しました。"

const summarizeSystemPrompt = "あなたは文章を簡潔に要約するアシスタントです。"

const summarizeUserPrompt = "以下の文章を簡潔に要約してください:\n%s"

// Summarize produces a short summary of the transcript. There is no format
// constraint on the reply; it is returned trimmed. On any failure the fixed
// fallback string is returned instead of an error.
func (c *Client) Summarize(ctx context.Context, transcript string) string {
	reply, err := c.chat(ctx, summarizeSystemPrompt, fmt.Sprintf(summarizeUserPrompt, transcript))
	if err != nil {
		c.log.Warn().Err(err).Msg("summarization request failed, using fallback")
		return SummaryFallback
	}
	summary := strings.TrimSpace(reply)
	if summary == "" {
		return SummaryFallback
	}
	return summary
}
