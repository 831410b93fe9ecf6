package sink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"orgscout-engine/internal/domain"
)

// WriteRecords persists the whole result collection in one shot: indented
// JSON, written to a temp file and renamed into place so a failed run never
// leaves a truncated document behind.
func WriteRecords(path string, records []domain.OrganizationRecord) error {
	if records == nil {
		records = []domain.OrganizationRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
