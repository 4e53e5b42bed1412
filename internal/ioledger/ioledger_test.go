package ioledger_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/ichinichi/meigen/internal/ioledger"
	"github.com/ichinichi/meigen/pkg/corpus"
	"github.com/ichinichi/meigen/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoadAbsent(t *testing.T) {
	st := ioledger.Load(filepath.Join(t.TempDir(), "meigen_meta.json"))
	assert.Equal(t, corpus.State{}, st)
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		msg     string
		content string
	}{
		{"not json", "{{{"},
		{"wrong types", `{"last_processed_id": "ten"}`},
		{"negative", `{"last_processed_id": -1}`},
	}

	for _, v := range tests {
		path := filepath.Join(t.TempDir(), "meigen_meta.json")
		require.NoError(t, os.WriteFile(path, []byte(v.content), 0644))
		st := ioledger.Load(path)
		assert.Equal(t, corpus.State{}, st, v.msg)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "meigen_meta.json")
	now := time.Date(2025, 9, 16, 8, 0, 0, 0, time.UTC)
	st := corpus.State{
		LastProcessedID: 42,
		TotalQuotes:     42,
		LastUpdate:      &now,
		PublishedCount:  1,
		Publications: []corpus.Publication{
			{ID: 7, PublishDate: "2025-09-16", NewsletterNumber: 3},
		},
	}

	err := ioledger.Save(path, st)
	require.NoError(t, err)

	res := ioledger.Load(path)
	require.NotNil(t, res.LastUpdate)
	assert.True(t, now.Equal(*res.LastUpdate))
	res.LastUpdate = &now
	assert.Equal(t, st, res)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"last_processed_id"`)
	assert.Contains(t, string(content), `"published_count"`)
}

func TestSaveError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := ioledger.Save(filepath.Join(blocker, "meta.json"), corpus.State{})
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.LedgerSaveError, gnErr.Code)
}
