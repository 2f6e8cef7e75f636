package llm

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// UnknownName is the placeholder responsible party when extraction fails.
const UnknownName = "不明"

const extractSystemPrompt = "あなたは音声メモから担当者名と発注数を抽出するアシスタントです。"

const extractUserPrompt = `次の文字起こしから担当者と発注数を抽出してください。
担当者は必ず次のいずれかです: %s
回答は次の形式だけで、他のテキストを含めないでください:
担当者:<名前> 発注数:<数量>個

文字起こし:
%s`

// ExtractionResult is the structured pair pulled out of a transcript.
// Name is a whitelist member or UnknownName; Quantity is non-negative.
type ExtractionResult struct {
	Name     string
	Quantity int
}

// Extract asks the model for the responsible party and order quantity in
// the mandated reply format, then parses the reply. Any failure, from the
// API call to a malformed reply, yields {UnknownName, 0}.
func (c *Client) Extract(ctx context.Context, transcript string) ExtractionResult {
	reply, err := c.chat(ctx, extractSystemPrompt,
		fmt.Sprintf(extractUserPrompt, strings.Join(c.names, "、"), transcript))
	if err != nil {
		c.log.Warn().Err(err).Msg("extraction request failed, falling back to defaults")
		return ExtractionResult{Name: UnknownName}
	}

	result, ok := ParseExtractReply(reply, c.names)
	if !ok {
		c.log.Warn().Str("reply", reply).Msg("extraction reply did not match template")
	}
	return result
}

// ParseExtractReply parses a reply that must match the template
// `担当者:<name> 発注数:<integer>個` exactly. The name must be a member of
// names and the quantity a non-negative integer. Any deviation, including
// text before the first label or after 個, fails closed to {UnknownName, 0}
// with ok=false.
func ParseExtractReply(reply string, names []string) (ExtractionResult, bool) {
	failed := ExtractionResult{Name: UnknownName}

	fields := strings.Fields(strings.TrimSpace(reply))
	if len(fields) != 2 {
		return failed, false
	}

	name, ok := strings.CutPrefix(fields[0], "担当者:")
	if !ok || name == "" {
		return failed, false
	}
	qtyPart, ok := strings.CutPrefix(fields[1], "発注数:")
	if !ok {
		return failed, false
	}
	qtyStr, ok := strings.CutSuffix(qtyPart, "個")
	if !ok || qtyStr == "" {
		return failed, false
	}

	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty < 0 {
		return failed, false
	}
	if !slices.Contains(names, name) {
		return failed, false
	}
	return ExtractionResult{Name: name, Quantity: qty}, true
}
