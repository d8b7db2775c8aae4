package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/ghpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{
			name:     "bucket",
			data:     schema.DailyBucket{Date: "2024-03-15", Count: 3},
			expected: "{\n  \"date\": \"2024-03-15\",\n  \"count\": 3\n}\n",
		},
		{
			name:     "array",
			data:     []string{"repos", "activity"},
			expected: "[\n  \"repos\",\n  \"activity\"\n]\n",
		},
		{
			name:     "string",
			data:     "octocat",
			expected: "\"octocat\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeJSON(&buf, tt.data))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, schema.HistogramSummary{Total: 7, ActiveDays: 2, PeakDate: "2024-03-15", PeakCount: 5}))
	assert.Equal(t, "total: 7\nactive_days: 2\npeak_date: \"2024-03-15\"\npeak_count: 5\n", buf.String())
}

func TestWriteCSVWithHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:     "rows",
			header:   []string{"date", "commits"},
			rows:     [][]string{{"2024-03-15", "3"}, {"2024-03-16", "0"}},
			expected: "date,commits\n2024-03-15,3\n2024-03-16,0\n",
		},
		{
			name:     "header only",
			header:   []string{"type", "repo"},
			expected: "type,repo\n",
		},
		{
			name:     "quoted value",
			header:   []string{"name", "description"},
			rows:     [][]string{{"hello-world", "My first, and best, repo"}},
			expected: "name,description\nhello-world,\"My first, and best, repo\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeCSVWithHeader(&buf, tt.header, func(w *csv.Writer) error {
				for _, row := range tt.rows {
					if err := w.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteCSVWithHeaderError(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"col"}, func(*csv.Writer) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWriteWithFile(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		called := false
		err := writeWithFile("", func(io.Writer) error {
			called = true
			return nil
		}, "Wrote nothing")
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		err := writeWithFile(path, func(w io.Writer) error {
			return writeJSON(w, map[string]int{"total": 7})
		}, "Wrote JSON")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		var got map[string]int
		require.NoError(t, json.Unmarshal(content, &got))
		assert.Equal(t, 7, got["total"])
	})

	t.Run("writer error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.csv")
		err := writeWithFile(path, func(io.Writer) error { return assert.AnError }, "Wrote CSV")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("invalid path", func(t *testing.T) {
		err := writeWithFile(filepath.Join(t.TempDir(), "missing", "x.txt"), func(io.Writer) error { return nil }, "Wrote")
		require.Error(t, err)
	})
}
