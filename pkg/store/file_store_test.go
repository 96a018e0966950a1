package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func sampleSession(id string, createdAt time.Time) *SessionIndex {
	return &SessionIndex{
		SessionId: id,
		CreatedAt: createdAt,
		Files:     []string{"geography.pdf"},
		Passages: []Passage{
			{
				Id:         "p1",
				SourceFile: "geography.pdf",
				Page:       1,
				Position:   0,
				Text:       "Paris is the capital of France.",
				Vector:     []float32{0.123456789, -0.987654321, 0.5},
			},
			{
				Id:         "p2",
				SourceFile: "geography.pdf",
				Page:       2,
				Position:   1,
				Text:       "Berlin is the capital of Germany.",
				Vector:     []float32{-0.333333343, 0.666666687, 0.0001},
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	original := sampleSession("s1", time.Now().UTC().Truncate(time.Millisecond))

	require.NoError(t, s.Save(original))

	loaded, err := s.Load("s1")
	require.NoError(t, err)

	assert.Equal(t, original.SessionId, loaded.SessionId)
	assert.True(t, original.CreatedAt.Equal(loaded.CreatedAt))
	assert.Equal(t, original.Files, loaded.Files)
	require.Len(t, loaded.Passages, len(original.Passages))
	for i, want := range original.Passages {
		got := loaded.Passages[i]
		assert.Equal(t, want.Id, got.Id)
		assert.Equal(t, want.SourceFile, got.SourceFile)
		assert.Equal(t, want.Page, got.Page)
		assert.Equal(t, want.Position, got.Position)
		assert.Equal(t, want.Text, got.Text)
		// Vectors must round-trip bit-for-bit.
		assert.Equal(t, want.Vector, got.Vector)
	}
}

func TestLoadUnknownSession(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	first := sampleSession("s1", time.Now())
	require.NoError(t, s.Save(first))

	second := sampleSession("s1", time.Now())
	second.Files = []string{"other.pdf"}
	require.NoError(t, s.Save(second))

	loaded, err := s.Load("s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"other.pdf"}, loaded.Files)

	summaries, err := s.List()
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	older := sampleSession("older", time.Now().Add(-time.Hour))
	newer := sampleSession("newer", time.Now())

	require.NoError(t, s.Save(older))
	require.NoError(t, s.Save(newer))

	summaries, err := s.List()
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "newer", summaries[0].SessionId)
	assert.Equal(t, "older", summaries[1].SessionId)
	assert.Equal(t, 2, summaries[0].ParagraphCount)
	assert.False(t, summaries[1].CreatedAt.After(summaries[0].CreatedAt))

	// Stable across repeated calls absent mutation.
	again, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, summaries, again)
}

func TestListIgnoresPartialWrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sampleSession("s1", time.Now())))

	// A crashed save leaves a temp file behind; it must never be listed
	// or loadable.
	partial := filepath.Join(s.dir, "s2.tmp-1234")
	require.NoError(t, os.WriteFile(partial, []byte("partial garbage"), 0644))

	summaries, err := s.List()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "s1", summaries[0].SessionId)

	_, err = s.Load("s2")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sampleSession("s1", time.Now())))

	require.NoError(t, s.Delete("s1"))
	require.NoError(t, s.Delete("s1"))

	assert.False(t, s.Exists("s1"))
	require.NoError(t, s.Delete("never-existed"))
}
