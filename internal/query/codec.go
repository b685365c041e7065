package query

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/vvka-141/mediaurl/internal/params"
	"github.com/vvka-141/mediaurl/internal/schema"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

// Codec encodes and decodes plugin query strings.
type Codec struct {
	addonPath string
	schema    *schema.Schema
	items     mediaurl.ItemCodec
	logger    mediaurl.Logger
	nonce     func() int
}

// Option configures a Codec.
type Option func(*Codec)

// WithNonce replaces the source of the live-stream cache buster.
func WithNonce(fn func() int) Option {
	return func(c *Codec) { c.nonce = fn }
}

// New creates a Codec producing URLs below addonPath.
func New(addonPath string, sch *schema.Schema, items mediaurl.ItemCodec, logger mediaurl.Logger, opts ...Option) *Codec {
	c := &Codec{
		addonPath: addonPath,
		schema:    sch,
		items:     items,
		logger:    logger,
		nonce:     randomLive,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func randomLive() int {
	return mediaurl.RandomLiveMin + rand.IntN(mediaurl.RandomLiveMax-mediaurl.RandomLiveMin+1)
}

// AddonPath returns the prefix of encoded URLs.
func (c *Codec) AddonPath() string { return c.addonPath }

// Decode parses a query string (with or without its leading '?') into
// parameters validated against the schema of its action.
// An empty query yields empty parameters.
func (c *Codec) Decode(query string) (mediaurl.Parameters, error) {
	query = strings.TrimPrefix(query, "?")
	result := make(mediaurl.Parameters)
	if query == "" {
		return result, nil
	}

	pairs, err := params.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	raw := params.ToMap(pairs)
	if _, ok := raw[mediaurl.ParamChannelCode]; !ok {
		// queries from before channel codes existed
		raw[mediaurl.ParamChannelCode] = ""
	}

	action, ok := raw[mediaurl.ParamAction]
	if !ok {
		return nil, &mediaurl.MissingActionError{}
	}
	result[mediaurl.ParamAction] = mediaurl.StringValue(action)

	fields, ok := c.schema.Lookup(action)
	if !ok {
		return nil, &mediaurl.UnknownActionError{Action: action}
	}

	for _, field := range fields {
		value, present := raw[field.Name]
		if !present {
			if field.Optional {
				c.logger.Trace("Found optional parameter '%s' for '%s' in %s, ignoring", field.Name, action, query)
				continue
			}
			return nil, &mediaurl.MissingParameterError{Parameter: field.Name, Action: action}
		}
		result[field.Name] = mediaurl.StringValue(value)
	}

	if pickle := result[mediaurl.ParamPickle].String(); pickle != "" {
		c.logger.Verbose("Found pickle: %s", pickle)
		item, err := c.items.Decode(pickle)
		if err != nil {
			return nil, fmt.Errorf("failed to depickle item for action %q: %w", action, err)
		}
		result[mediaurl.ParamItem] = mediaurl.ItemValue(item)
	}

	return result, nil
}

// DecodeURL decodes the query part of a full plugin URL. A string without
// '?' is treated as a bare query.
func (c *Codec) DecodeURL(rawURL string) (mediaurl.Parameters, error) {
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		return c.Decode(rawURL[i+1:])
	}
	return c.Decode(rawURL)
}

// EncodeRequest describes the URL to build.
type EncodeRequest struct {
	Channel  *mediaurl.Channel
	Action   string
	Item     *mediaurl.MediaItem
	Category string
}

// Encode builds a plugin URL. Parameters appear in the order channel,
// channelcode, action, pickle, rnd, category.
func (c *Codec) Encode(req EncodeRequest) (string, error) {
	if req.Action == "" {
		return "", fmt.Errorf("%w: an action is required to build a URL", mediaurl.ErrUsage)
	}

	var pairs []params.Pair
	if req.Channel != nil {
		pairs = append(pairs,
			params.Pair{Key: mediaurl.ParamChannel, Value: req.Channel.Module},
			params.Pair{Key: mediaurl.ParamChannelCode, Value: req.Channel.Code},
		)
	}

	pairs = append(pairs, params.Pair{Key: mediaurl.ParamAction, Value: req.Action})

	if req.Item != nil {
		pickle, err := c.items.Encode(req.Item)
		if err != nil {
			return "", fmt.Errorf("failed to pickle item %s: %w", req.Item.GUID, err)
		}
		pairs = append(pairs, params.Pair{Key: mediaurl.ParamPickle, Value: pickle})

		if req.Action == mediaurl.ActionPlayVideo && req.Item.IsLive {
			pairs = append(pairs, params.Pair{Key: mediaurl.ParamRandomLive, Value: strconv.Itoa(c.nonce())})
		}
	}

	if req.Category != "" {
		pairs = append(pairs, params.Pair{Key: mediaurl.ParamCategory, Value: req.Category})
	}

	url := c.addonPath + "?" + params.JoinQuery(pairs)
	c.logger.Trace("Created url: '%s'", url)
	return url, nil
}
