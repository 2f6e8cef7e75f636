package llm

import (
	"testing"

	"github.com/rs/zerolog"
)

var testNames = []string{"佐藤", "鈴木", "田中", "高橋"}

func TestParseExtractReply(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		want   ExtractionResult
		wantOK bool
	}{
		{
			name:   "exact template",
			reply:  "担当者:佐藤 発注数:5個",
			want:   ExtractionResult{Name: "佐藤", Quantity: 5},
			wantOK: true,
		},
		{
			name:   "surrounding whitespace tolerated",
			reply:  "  担当者:田中 発注数:12個\n",
			want:   ExtractionResult{Name: "田中", Quantity: 12},
			wantOK: true,
		},
		{
			name:   "zero quantity",
			reply:  "担当者:鈴木 発注数:0個",
			want:   ExtractionResult{Name: "鈴木", Quantity: 0},
			wantOK: true,
		},
		{
			name:  "missing name label",
			reply: "佐藤 発注数:5個",
		},
		{
			name:  "missing quantity label",
			reply: "担当者:佐藤 5個",
		},
		{
			name:  "non-integer quantity",
			reply: "担当者:佐藤 発注数:たくさん個",
		},
		{
			name:  "missing counter suffix",
			reply: "担当者:佐藤 発注数:5",
		},
		{
			name:  "negative quantity",
			reply: "担当者:佐藤 発注数:-3個",
		},
		{
			name:  "leading text before label",
			reply: "抽出結果は 担当者:佐藤 発注数:5個",
		},
		{
			name:  "trailing text after template",
			reply: "担当者:佐藤 発注数:5個 です",
		},
		{
			name:  "name outside whitelist",
			reply: "担当者:山本 発注数:5個",
		},
		{
			name:  "empty reply",
			reply: "",
		},
		{
			name:  "free-form refusal",
			reply: "すみません、担当者を特定できませんでした。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseExtractReply(tt.reply, testNames)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				tt.want = ExtractionResult{Name: UnknownName, Quantity: 0}
			}
			if got != tt.want {
				t.Errorf("result = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini", testNames, zerolog.Nop()); err == nil {
		t.Error("NewClient with empty api key should return an error")
	}
	if _, err := NewClient("sk-test", "gpt-4o-mini", nil, zerolog.Nop()); err == nil {
		t.Error("NewClient with empty whitelist should return an error")
	}
	if _, err := NewClient("sk-test", "gpt-4o-mini", testNames, zerolog.Nop()); err != nil {
		t.Errorf("NewClient() error = %v", err)
	}
}
