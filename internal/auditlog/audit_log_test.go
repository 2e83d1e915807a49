package auditlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditLog(t *testing.T) *AuditLog {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "audit", "compilations.db")
	audit, err := NewAuditLog(dbPath, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { audit.Close() })
	return audit
}

func TestRecordCompilation_AndQueryBack(t *testing.T) {
	audit := newTestAuditLog(t)
	storedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	id, err := audit.RecordCompilation(CompilationEntry{
		FilePath:      "/home/user/main.tex",
		VersionID:     "20260801_100000_abcdef0123456789",
		StoredAt:      storedAt,
		LinesAdded:    3,
		LinesDeleted:  1,
		LinesModified: 2,
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	entries, err := audit.GetRecentEntries("/home/user/main.tex", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, "20260801_100000_abcdef0123456789", entry.VersionID)
	assert.Equal(t, 3, entry.LinesAdded)
	assert.Equal(t, 1, entry.LinesDeleted)
	assert.Equal(t, 2, entry.LinesModified)
	assert.True(t, entry.StoredAt.Equal(storedAt))
}

func TestGetRecentEntries_NewestFirstWithLimit(t *testing.T) {
	audit := newTestAuditLog(t)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := audit.RecordCompilation(CompilationEntry{
			FilePath:  "/home/user/main.tex",
			VersionID: string(rune('a' + i)),
			StoredAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := audit.GetRecentEntries("/home/user/main.tex", 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e", entries[0].VersionID)
	assert.Equal(t, "d", entries[1].VersionID)
	assert.Equal(t, "c", entries[2].VersionID)
}

func TestGetRecentEntries_IsolatedPerDocument(t *testing.T) {
	audit := newTestAuditLog(t)
	now := time.Now()

	_, err := audit.RecordCompilation(CompilationEntry{FilePath: "/home/a.tex", VersionID: "v1", StoredAt: now})
	require.NoError(t, err)
	_, err = audit.RecordCompilation(CompilationEntry{FilePath: "/home/b.tex", VersionID: "v2", StoredAt: now})
	require.NoError(t, err)

	entries, err := audit.GetRecentEntries("/home/a.tex", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "v1", entries[0].VersionID)

	entries, err = audit.GetRecentEntries("/home/missing.tex", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
