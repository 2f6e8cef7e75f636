package store

// FindRecipient scans records in stored order and returns the LINE user ID
// of the first row whose 担当者 column equals name. The earliest inserted
// row wins on duplicate names: a later duplicate would otherwise never
// resolve to a different recipient. Rows carrying the Unknown sentinel hold
// no addressable recipient and are skipped, as is the Unknown name itself.
func FindRecipient(records []Record, name string) (string, bool) {
	if name == "" || name == Unknown {
		return "", false
	}
	for _, rec := range records {
		if rec.Name == name && rec.ID != Unknown && rec.ID != "" {
			return rec.ID, true
		}
	}
	return "", false
}
