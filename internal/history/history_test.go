package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAdmitThenSeen(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "seen.json"), DefaultLimit, zaptest.NewLogger(t))

	assert.False(t, m.Seen("acme_result declared"))
	assert.True(t, m.Admit("acme_result declared"))
	assert.True(t, m.Seen("acme_result declared"))
	assert.False(t, m.Admit("acme_result declared"))
	assert.Equal(t, 1, m.Len())
}

func TestSaveKeepsMostRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	m := NewManager(path, DefaultLimit, zaptest.NewLogger(t))

	for i := 0; i < 501; i++ {
		require.True(t, m.Record(fmt.Sprintf("id-%03d", i)))
	}
	require.NoError(t, m.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var ids []string
	require.NoError(t, json.Unmarshal(data, &ids))

	require.Len(t, ids, 500)
	assert.Equal(t, "id-001", ids[0])
	assert.Equal(t, "id-500", ids[499])
	assert.NotContains(t, ids, "id-000")
}

func TestReloadPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")

	first := NewManager(path, 3, zaptest.NewLogger(t))
	first.Record("a")
	first.Record("b")
	require.NoError(t, first.Save())

	second := NewManager(path, 3, zaptest.NewLogger(t))
	assert.True(t, second.Seen("a"))
	second.Record("c")
	second.Record("d")
	second.Record("a")

	assert.Equal(t, []string{"b", "c", "d"}, second.IDs())
}

func TestMissingOrCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()

	missing := NewManager(filepath.Join(dir, "nope.json"), DefaultLimit, zaptest.NewLogger(t))
	assert.Equal(t, 0, missing.Len())

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0o644))
	m := NewManager(corrupt, DefaultLimit, zaptest.NewLogger(t))
	assert.Equal(t, 0, m.Len())

	m.Record("x")
	require.NoError(t, m.Save())
	reloaded := NewManager(corrupt, DefaultLimit, zaptest.NewLogger(t))
	assert.True(t, reloaded.Seen("x"))
}
