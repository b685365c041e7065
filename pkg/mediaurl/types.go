package mediaurl

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Channel identifies the channel module a URL is addressed to.
type Channel struct {
	// Module is the channel module name, e.g. "chn_nos2010".
	Module string
	// Code distinguishes channels sharing one module. May be empty.
	Code string
}

// Item types.
const (
	ItemTypeFolder = "folder"
	ItemTypeVideo  = "video"
	ItemTypeAudio  = "audio"
	ItemTypePage   = "page"
)

// MediaItem is a playable or browsable entry produced by a channel.
type MediaItem struct {
	GUID           string `json:"guid"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	URL            string `json:"url"`
	Description    string `json:"description,omitempty"`
	Thumb          string `json:"thumb,omitempty"`
	Fanart         string `json:"fanart,omitempty"`
	IsLive         bool   `json:"is_live,omitempty"`
	IsGeoLocked    bool   `json:"is_geo_locked,omitempty"`
	IsDrmProtected bool   `json:"is_drm_protected,omitempty"`
	IsPaid         bool   `json:"is_paid,omitempty"`
}

// NewMediaItem creates a folder item with a fresh GUID.
func NewMediaItem(name, url string) *MediaItem {
	return &MediaItem{
		GUID: NewGUID(),
		Name: name,
		Type: ItemTypeFolder,
		URL:  url,
	}
}

// NewGUID returns an upper-case random GUID in the form items use.
func NewGUID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Validate checks that an item can be pickled and found again.
func (m *MediaItem) Validate() error {
	if m.GUID == "" {
		return fmt.Errorf("%w: guid is required", ErrInvalidItem)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	return nil
}

func (m *MediaItem) String() string {
	return fmt.Sprintf("%s [%s] (%s)", m.Name, m.Type, m.GUID)
}

// ItemCodec encodes media items into URL-safe strings and back.
type ItemCodec interface {
	Encode(item *MediaItem) (string, error)
	Decode(s string) (*MediaItem, error)
}
