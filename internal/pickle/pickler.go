package pickle

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

var (
	urlEncoder = strings.NewReplacer(
		"\n", "-",
		"=", "%3d",
		"/", "%2f",
		"+", "%2b",
	)
	urlDecoder = strings.NewReplacer(
		"-", "\n",
		"%3d", "=",
		"%3D", "=",
		"%2f", "/",
		"%2F", "/",
		"%2b", "+",
		"%2B", "+",
	)
)

// Pickler implements mediaurl.ItemCodec.
// Safe for concurrent use by multiple goroutines.
type Pickler struct {
	store  *Store
	logger mediaurl.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewPickler creates a Pickler. store may be nil, in which case store
// references cannot be resolved.
func NewPickler(store *Store, logger mediaurl.Logger) *Pickler {
	return &Pickler{
		store:  store,
		logger: logger,
		cache:  make(map[string]string),
	}
}

// Encode pickles item. Results are cached per item GUID, so an item must
// not be modified after it was first pickled.
func (p *Pickler) Encode(item *mediaurl.MediaItem) (string, error) {
	if item == nil {
		return "", fmt.Errorf("%w: cannot pickle nil item", mediaurl.ErrInvalidItem)
	}
	if err := item.Validate(); err != nil {
		return "", err
	}

	p.mu.Lock()
	cached, ok := p.cache[item.GUID]
	p.mu.Unlock()
	if ok {
		p.logger.Trace("Pickle cache hit: %s", item.GUID)
		return cached, nil
	}

	data, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("%w: %v", mediaurl.ErrInvalidItem, err)
	}
	encoded := urlEncoder.Replace(base64.StdEncoding.EncodeToString(data))

	p.mu.Lock()
	p.cache[item.GUID] = encoded
	p.mu.Unlock()
	return encoded, nil
}

// Decode reverses Encode, or resolves a store reference.
func (p *Pickler) Decode(s string) (*mediaurl.MediaItem, error) {
	if storeGUID, itemGUID, ok := ParseReference(s); ok {
		if p.store == nil {
			return nil, fmt.Errorf("%w: cannot resolve %q", mediaurl.ErrStoreUnavailable, s)
		}
		return p.store.Get(storeGUID, itemGUID)
	}

	raw := urlDecoder.Replace(strings.TrimRight(s, " "))
	p.logger.Trace("DePickle: %s (might be truncated)", preview(raw))

	// the decoder skips the line breaks restored from '-'
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mediaurl.ErrInvalidItem, err)
	}

	var item mediaurl.MediaItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("%w: %v", mediaurl.ErrInvalidItem, err)
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return &item, nil
}

func preview(s string) string {
	if len(s) <= mediaurl.MaxTracePreviewLength {
		return s
	}
	return s[:mediaurl.MaxTracePreviewLength]
}
