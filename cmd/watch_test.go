package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWatch_ChecksOnceBeforeSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := shellConfig()
	cfg.Handle = "octocat"
	cfg.Schedule = "@every 1h"
	cfg.Output = schema.JSONOut

	client := shellClient()
	var out bytes.Buffer
	require.NoError(t, runWatch(ctx, &out, cfg, client))

	var update schema.WatchUpdate
	require.NoError(t, json.Unmarshal(out.Bytes(), &update))
	assert.Equal(t, "octocat", update.Handle)
	assert.True(t, update.First)
	client.AssertNumberOfCalls(t, "GetUser", 1)
}

func TestRunWatch_RejectsTabularOutput(t *testing.T) {
	cfg := shellConfig()
	cfg.Handle = "octocat"
	cfg.Schedule = contract.DefaultSchedule
	cfg.Output = schema.CSVOut

	err := runWatch(context.Background(), &bytes.Buffer{}, cfg, &contract.MockGitHubClient{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch supports text, json or yaml output")
}
