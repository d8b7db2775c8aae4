package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/huangsam/ghpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWatchUpdate(t *testing.T) {
	update := schema.WatchUpdate{
		Handle:    "octocat",
		CheckedAt: time.Date(2024, 3, 30, 18, 45, 0, 0, time.UTC),
		Summary:   schema.HistogramSummary{Total: 15, ActiveDays: 2},
		Today:     3,
		Delta:     2,
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteWatchUpdate(&buf, update, plainConfig()))
		assert.Equal(t, "[2024-03-30T18:45:00Z] octocat: 15 commits in 30 days over 2 active days, 3 today (+2 since last check)\n", buf.String())
	})

	t.Run("first check has no delta", func(t *testing.T) {
		first := update
		first.First = true
		var buf bytes.Buffer
		require.NoError(t, WriteWatchUpdate(&buf, first, plainConfig()))
		assert.NotContains(t, buf.String(), "since last check")
	})

	t.Run("json lines", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Output = schema.JSONOut
		var buf bytes.Buffer
		require.NoError(t, WriteWatchUpdate(&buf, update, cfg))
		require.NoError(t, WriteWatchUpdate(&buf, update, cfg))
		assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
		assert.Contains(t, buf.String(), `"delta":2`)
	})

	t.Run("yaml documents", func(t *testing.T) {
		cfg := plainConfig()
		cfg.Output = schema.YAMLOut
		var buf bytes.Buffer
		require.NoError(t, WriteWatchUpdate(&buf, update, cfg))
		assert.Contains(t, buf.String(), "---\nhandle: octocat\n")
	})
}
