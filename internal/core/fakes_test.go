package core

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"pravobot/internal/catalog"
	"pravobot/pkg"
)

type llmCall struct {
	system    string
	user      string
	maxTokens int
}

// fakeLLM records every completion call and returns a canned response.
type fakeLLM struct {
	mu       sync.Mutex
	response string
	err      error
	calls    []llmCall
}

func (f *fakeLLM) Complete(_ context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, llmCall{system: systemPrompt, user: userPrompt, maxTokens: maxTokens})
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeSink records appended booking rows and optionally fails.
type fakeSink struct {
	mu      sync.Mutex
	err     error
	records []*pkg.BookingRecord
}

func (f *fakeSink) AppendBooking(_ context.Context, rec *pkg.BookingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeSink) all() []*pkg.BookingRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*pkg.BookingRecord(nil), f.records...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestIndex(t *testing.T, contents string) *catalog.Index {
	t.Helper()
	path := filepath.Join(t.TempDir(), "video_data.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	ix := catalog.New(path, discardLogger())
	require.NoError(t, ix.Load())
	return ix
}

// newTestRouter wires a router over in-memory fakes.
func newTestRouter(t *testing.T, model *fakeLLM, sink *fakeSink, catalogLines string) (*Router, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	assistant := NewAssistant(model, newTestIndex(t, catalogLines), 1000, discardLogger())
	booking := NewBookingFlow(store, sink, discardLogger())
	return NewRouter(store, booking, assistant, discardLogger()), store
}
