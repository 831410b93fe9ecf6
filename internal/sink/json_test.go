package sink_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orgscout-engine/internal/domain"
	"orgscout-engine/internal/sink"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []domain.OrganizationRecord {
	return []domain.OrganizationRecord{
		{
			Name:        "Acme Inc",
			Founded:     "2012",
			Description: "We build widgets",
			TeamSize:    "24",
			Jobs: []domain.JobListing{
				{Title: "Engineer", Location: "SF", Pay: "$150K", Equity: "1%", Experience: "3+ years"},
			},
			Founders: []domain.Founder{
				{Name: "Jane Doe", Description: "CEO", Links: []string{"https://twitter.com/janedoe"}},
			},
			NewsStories: []domain.NewsStory{},
			LaunchPosts: []domain.LaunchPost{
				{Title: "Launch", Description: "Big day", Links: []string{"https://www.ycombinator.com/launches/x"}},
			},
		},
		{
			Name:        "Beta Corp",
			Jobs:        []domain.JobListing{},
			Founders:    []domain.Founder{},
			NewsStories: []domain.NewsStory{},
			LaunchPosts: []domain.LaunchPost{},
		},
	}
}

func TestWriteRecords_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "companies.json")
	want := sampleRecords()

	require.NoError(t, sink.WriteRecords(path, want))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []domain.OrganizationRecord
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, want, got)
}

func TestWriteRecords_Indented(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "companies.json")
	require.NoError(t, sink.WriteRecords(path, sampleRecords()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "\n  {"), "output should be human-readable")
}

func TestWriteRecords_NilCollectionWritesEmptyArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "companies.json")
	require.NoError(t, sink.WriteRecords(path, nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

func TestWriteRecords_NoTempFileLeftBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "companies.json")
	require.NoError(t, sink.WriteRecords(path, sampleRecords()))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
