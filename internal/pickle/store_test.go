package pickle

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mediaurl/internal/files/filesystem"
	"github.com/vvka-141/mediaurl/internal/logging"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

func TestReference(t *testing.T) {
	ref := Reference("ABCDEF01", "1234")
	require.Equal(t, "ABCDEF01--1234", ref)

	store, item, ok := ParseReference(ref)
	require.True(t, ok)
	require.Equal(t, "ABCDEF01", store)
	require.Equal(t, "1234", item)

	for _, inline := range []string{"eyJndWlkIjoiMSJ9", "abc-def", "--x", "x--"} {
		_, _, ok := ParseReference(inline)
		require.False(t, ok, inline)
	}
}

func TestStore_PutLayout(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	store := NewStore(mfs, "/cache", logging.NewNullLogger())

	require.NoError(t, store.Put("ABCDEF01-2345", nil, []*mediaurl.MediaItem{newTestItem()}))

	data, err := mfs.ReadFile("/cache/pickles/ab/cd/abcdef01-2345.store.gz")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0x1f, 0x8b}), "store must be gzip compressed")
}

func TestStore_GetIsCaseInsensitiveOnStoreGUID(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	store := NewStore(mfs, "/cache", logging.NewNullLogger())
	child := newTestItem()

	require.NoError(t, store.Put("ABCDEF01", nil, []*mediaurl.MediaItem{child}))

	got, err := store.Get("abcdef01", child.GUID)
	require.NoError(t, err)
	require.Equal(t, child, got)
}

func TestStore_Errors(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem()
	store := NewStore(mfs, "/cache", logging.NewNullLogger())
	require.NoError(t, store.Put("ABCDEF01", nil, []*mediaurl.MediaItem{newTestItem()}))

	_, err := store.Get("ABCDEF01", "missing")
	require.ErrorIs(t, err, mediaurl.ErrItemNotFound)

	_, err = store.Get("FFFFFFFF", "missing")
	require.ErrorIs(t, err, mediaurl.ErrItemNotFound)

	_, err = store.Get("ab", "x")
	require.ErrorIs(t, err, mediaurl.ErrInvalidItem)

	_, err = store.Get("../../etc", "x")
	require.ErrorIs(t, err, mediaurl.ErrInvalidItem)

	require.ErrorIs(t, store.Put("", nil, nil), mediaurl.ErrInvalidItem)
	require.ErrorIs(t, store.Put("ABCDEF01", nil, []*mediaurl.MediaItem{{Name: "no guid"}}), mediaurl.ErrInvalidItem)

	mfs.AddFileWithTime("/cache/pickles/ee/ee/eeeeeeee.store.gz", []byte("not gzip"), time.Now())
	_, err = store.Get("EEEEEEEE", "x")
	require.ErrorIs(t, err, mediaurl.ErrStoreUnavailable)
}

func TestStore_NoRoot(t *testing.T) {
	store := NewStore(filesystem.NewMemoryFileSystem(), "", logging.NewNullLogger())

	_, err := store.Get("ABCDEF01", "x")
	require.ErrorIs(t, err, mediaurl.ErrStoreUnavailable)
	require.ErrorIs(t, store.Put("ABCDEF01", nil, nil), mediaurl.ErrStoreUnavailable)

	n, err := store.Purge(time.Hour, time.Now())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestStore_Purge(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	mfs := filesystem.NewMemoryFileSystem()
	store := NewStore(mfs, "/cache", logging.NewNullLogger())

	mfs.AddFileWithTime("/cache/pickles/aa/aa/aaaa0001.store.gz", []byte("old"), now.Add(-40*24*time.Hour))
	mfs.AddFileWithTime("/cache/pickles/bb/bb/bbbb0001.store.gz", []byte("new"), now.Add(-time.Hour))
	mfs.AddFileWithTime("/cache/pickles/cc/cc/notes.txt", []byte("other"), now.Add(-400*24*time.Hour))

	removed, err := store.Purge(mediaurl.DefaultPurgeAge, now)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	_, err = mfs.Stat("/cache/pickles/aa/aa/aaaa0001.store.gz")
	require.Error(t, err)
	_, err = mfs.Stat("/cache/pickles/bb/bb/bbbb0001.store.gz")
	require.NoError(t, err)
	_, err = mfs.Stat("/cache/pickles/cc/cc/notes.txt")
	require.NoError(t, err)
}

func TestStore_PurgeEmptyStore(t *testing.T) {
	store := NewStore(filesystem.NewMemoryFileSystem(), "/cache", logging.NewNullLogger())
	removed, err := store.Purge(time.Hour, time.Now())
	require.NoError(t, err)
	require.Zero(t, removed)
}
