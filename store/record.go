package store

// Notification status values persisted in the 通知ステータス column.
const (
	StatusNotNotified  = "未通知"
	StatusNotified     = "通知済"
	StatusNotifyFailed = "通知失敗"
)

// Unknown is the sentinel stored when no recipient could be resolved for a
// record, and the placeholder name when extraction fails.
const Unknown = "不明"

// Header is the fixed first row of the workbook. Column order matches the
// fields of Record.
var Header = []string{"ID", "担当者", "発注数", "文字起こし結果", "要約", "通知ステータス"}

// Record is one persisted row: one processed upload and its outcome.
// The ID column holds the resolved LINE user ID, or Unknown when the
// responsible party could not be matched to a recipient.
type Record struct {
	ID         string `json:"ID"`
	Name       string `json:"担当者"`
	Quantity   int    `json:"発注数"`
	Transcript string `json:"文字起こし結果"`
	Summary    string `json:"要約"`
	Status     string `json:"通知ステータス"`
}
