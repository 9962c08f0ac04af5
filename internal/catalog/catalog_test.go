package catalog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "video_data.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadParsesEntriesInOrder(t *testing.T) {
	path := writeCatalog(t,
		"Title: Захист прав споживачів, Link: https://youtube.com/watch?v=L1\n"+
			"Title: Спадщина та заповіт, Link: https://youtube.com/watch?v=L2\n")
	ix := New(path, testLogger())
	require.NoError(t, ix.Load())

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, "https://youtube.com/watch?v=L1", ix.Lookup([]string{"споживачів"}))
	assert.Equal(t, "https://youtube.com/watch?v=L2", ix.Lookup([]string{"спадщина"}))
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := writeCatalog(t,
		"Title: Перший, Link: https://example.com/1\n"+
			"не рядок каталогу\n"+
			"\n"+
			"Title: Кома, Link: зайвий, Link: https://example.com/x\n"+ // separator inside the title is unparseable
			"Title: Другий, Link: https://example.com/2\n")
	ix := New(path, testLogger())
	require.NoError(t, ix.Load())
	assert.Equal(t, 2, ix.Len())
}

func TestLoadMissingFile(t *testing.T) {
	ix := New(filepath.Join(t.TempDir(), "absent.txt"), testLogger())
	assert.Error(t, ix.Load())
	// The previous (empty) snapshot stays in place.
	assert.Equal(t, 0, ix.Len())
	assert.Equal(t, "", ix.Lookup([]string{"будь-що"}))
}

func TestLookupFirstMatchWins(t *testing.T) {
	path := writeCatalog(t,
		"Title: Оренда землі, Link: https://example.com/first\n"+
			"Title: Оренда квартири, Link: https://example.com/second\n")
	ix := New(path, testLogger())
	require.NoError(t, ix.Load())

	assert.Equal(t, "https://example.com/first", ix.Lookup([]string{"оренда"}))
}

func TestLookupNoMatch(t *testing.T) {
	path := writeCatalog(t, "Title: Захист прав споживачів, Link: https://example.com/1\n")
	ix := New(path, testLogger())
	require.NoError(t, ix.Load())

	assert.Equal(t, "", ix.Lookup(nil))
	assert.Equal(t, "", ix.Lookup([]string{}))
	assert.Equal(t, "", ix.Lookup([]string{"розлучення"}))
}

func TestLookupIsCaseInsensitiveOnTitles(t *testing.T) {
	path := writeCatalog(t, "Title: ЗАХИСТ Прав Споживачів, Link: https://example.com/1\n")
	ix := New(path, testLogger())
	require.NoError(t, ix.Load())

	assert.Equal(t, "https://example.com/1", ix.Lookup([]string{"захист"}))
}

func TestReloadReplacesWholeSnapshot(t *testing.T) {
	path := writeCatalog(t, "Title: Старий запис, Link: https://example.com/old\n")
	ix := New(path, testLogger())
	require.NoError(t, ix.Load())
	require.Equal(t, 1, ix.Len())

	require.NoError(t, os.WriteFile(path, []byte(
		"Title: Новий запис, Link: https://example.com/new\n"+
			"Title: Ще один, Link: https://example.com/more\n"), 0o644))
	require.NoError(t, ix.Load())

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, "", ix.Lookup([]string{"старий"}), "old entries are gone after the swap")
	assert.Equal(t, "https://example.com/new", ix.Lookup([]string{"новий"}))
}

func TestLoadTrimsTitleAndLink(t *testing.T) {
	path := writeCatalog(t, "Title:  Пробіли навколо , Link:  https://example.com/trim \n")
	ix := New(path, testLogger())
	require.NoError(t, ix.Load())
	require.Equal(t, 1, ix.Len())
	assert.Equal(t, "https://example.com/trim", ix.Lookup([]string{"пробіли"}))
}
