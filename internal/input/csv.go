package input

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"orgscout-engine/internal/domain"
)

// Column aliases tried when the config doesn't pin a column name.
var (
	identifierAliases = []string{"identifier", "company_name", "name"}
	urlAliases        = []string{"source_url", "sourceurl", "company_url", "url"}
)

// LoadRows reads the input table. Column resolution is header-driven and
// case-insensitive; row order is preserved. Rows missing either field are
// dropped silently; they never reach the crawl.
func LoadRows(path, identifierCol, urlCol string) ([]domain.SourceRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are an input defect, not a parse error

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s: missing header row", path)
	}

	header := records[0]
	idIdx, err := resolveColumn(header, identifierCol, identifierAliases)
	if err != nil {
		return nil, err
	}
	urlIdx, err := resolveColumn(header, urlCol, urlAliases)
	if err != nil {
		return nil, err
	}

	var rows []domain.SourceRow
	for _, rec := range records[1:] {
		row := domain.SourceRow{
			Identifier: fieldAt(rec, idIdx),
			SourceURL:  fieldAt(rec, urlIdx),
		}
		if row.Identifier == "" || row.SourceURL == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func resolveColumn(header []string, configured string, aliases []string) (int, error) {
	want := aliases
	if configured = strings.TrimSpace(configured); configured != "" {
		want = []string{configured}
	}
	for _, name := range want {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("csv header has no column matching %q", strings.Join(want, ", "))
}

func fieldAt(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
