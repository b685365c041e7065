package pickle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/vvka-141/mediaurl/internal/files/filesystem"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

const (
	referenceSeparator = "--"
	storeSuffix        = ".store.gz"
	picklesDir         = "pickles"
)

// Reference builds the pickle value that points at a stored child item.
func Reference(storeGUID, itemGUID string) string {
	return storeGUID + referenceSeparator + itemGUID
}

// ParseReference splits a store reference. ok is false for inline pickles.
func ParseReference(s string) (storeGUID, itemGUID string, ok bool) {
	storeGUID, itemGUID, ok = strings.Cut(s, referenceSeparator)
	if !ok || storeGUID == "" || itemGUID == "" {
		return "", "", false
	}
	return storeGUID, itemGUID, true
}

type storeContent struct {
	Parent   *mediaurl.MediaItem            `json:"parent"`
	Children map[string]*mediaurl.MediaItem `json:"children"`
}

// Store persists listings as gzip-compressed JSON below
// <root>/pickles/<g[0:2]>/<g[2:4]>/<g>.store.gz, with g the lower-cased
// store GUID.
type Store struct {
	fs     filesystem.FileSystem
	root   string
	logger mediaurl.Logger
}

// NewStore creates a store rooted at root. An empty root yields a store
// whose operations fail with mediaurl.ErrStoreUnavailable.
func NewStore(fsys filesystem.FileSystem, root string, logger mediaurl.Logger) *Store {
	return &Store{fs: fsys, root: root, logger: logger}
}

func (s *Store) path(storeGUID string) (string, error) {
	if s.root == "" {
		return "", fmt.Errorf("%w: no pickle store path configured", mediaurl.ErrStoreUnavailable)
	}
	g := strings.ToLower(storeGUID)
	if len(g) < 4 || strings.ContainsAny(g, `/\.`) {
		return "", fmt.Errorf("%w: invalid store guid %q", mediaurl.ErrInvalidItem, storeGUID)
	}
	return path.Join(s.root, picklesDir, g[0:2], g[2:4], g+storeSuffix), nil
}

// Put writes parent and its children under storeGUID, replacing any
// previous content.
func (s *Store) Put(storeGUID string, parent *mediaurl.MediaItem, children []*mediaurl.MediaItem) error {
	if storeGUID == "" {
		return fmt.Errorf("%w: no parent and no channel guid specified", mediaurl.ErrInvalidItem)
	}
	p, err := s.path(storeGUID)
	if err != nil {
		return err
	}

	content := storeContent{
		Parent:   parent,
		Children: make(map[string]*mediaurl.MediaItem, len(children)),
	}
	for _, child := range children {
		if err := child.Validate(); err != nil {
			return err
		}
		content.Children[child.GUID] = child
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if err := json.NewEncoder(zw).Encode(content); err != nil {
		return fmt.Errorf("failed to encode store %s: %w", storeGUID, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to compress store %s: %w", storeGUID, err)
	}

	s.logger.Verbose("PickleStore: write to '%s'", p)
	if err := s.fs.WriteFile(p, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", mediaurl.ErrStoreUnavailable, err)
	}
	return nil
}

// Get returns the child itemGUID stored under storeGUID.
func (s *Store) Get(storeGUID, itemGUID string) (*mediaurl.MediaItem, error) {
	p, err := s.path(storeGUID)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("PickleStore: reading %s from '%s'", itemGUID, p)

	data, err := s.fs.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: store %s", mediaurl.ErrItemNotFound, storeGUID)
		}
		s.logger.Error("Error opening '%s': %v", p, err)
		return nil, fmt.Errorf("%w: %v", mediaurl.ErrStoreUnavailable, err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt store %s: %v", mediaurl.ErrStoreUnavailable, storeGUID, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt store %s: %v", mediaurl.ErrStoreUnavailable, storeGUID, err)
	}

	var content storeContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("%w: corrupt store %s: %v", mediaurl.ErrStoreUnavailable, storeGUID, err)
	}

	item, ok := content.Children[itemGUID]
	if !ok || item == nil {
		return nil, fmt.Errorf("%w: item %s in store %s", mediaurl.ErrItemNotFound, itemGUID, storeGUID)
	}
	return item, nil
}

// Purge removes stores last modified before now-age and returns how many
// were removed. A store directory that does not exist yet is not an error.
func (s *Store) Purge(age time.Duration, now time.Time) (int, error) {
	if s.root == "" {
		return 0, nil
	}
	s.logger.Info("PickleStore: purging store items older than %s", age)

	cutoff := now.Add(-age)
	removed := 0
	err := s.fs.Walk(path.Join(s.root, picklesDir), func(p string, info filesystem.FileInfo) error {
		if !strings.HasSuffix(p, storeSuffix) || !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := s.fs.Remove(p); err != nil {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
		s.logger.Verbose("PickleStore: Removed file '%s'", p)
		removed++
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return removed, fmt.Errorf("%w: %v", mediaurl.ErrStoreUnavailable, err)
	}
	return removed, nil
}
