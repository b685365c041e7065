package query

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mediaurl/internal/logging"
	"github.com/vvka-141/mediaurl/internal/pickle"
	"github.com/vvka-141/mediaurl/internal/schema"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

const testAddonPath = "plugin://plugin.video.retrospect/"

// listingSchema extends the defaults with a small action used in examples.
func listingSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Default().With(map[string][]schema.Field{
		"listing": {
			{Name: mediaurl.ParamChannel, Optional: true},
			{Name: mediaurl.ParamChannelCode},
			{Name: mediaurl.ParamCategory, Optional: true},
		},
	})
	require.NoError(t, err)
	return s
}

func newTestCodec(t *testing.T, opts ...Option) *Codec {
	t.Helper()
	logger := logging.NewNullLogger()
	return New(testAddonPath, listingSchema(t), pickle.NewPickler(nil, logger), logger, opts...)
}

type failingCodec struct{ err error }

func (f failingCodec) Encode(*mediaurl.MediaItem) (string, error) { return "", f.err }
func (f failingCodec) Decode(string) (*mediaurl.MediaItem, error) { return nil, f.err }

func TestDecode_Empty(t *testing.T) {
	codec := newTestCodec(t)

	for _, q := range []string{"", "?"} {
		got, err := codec.Decode(q)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestDecode_Example(t *testing.T) {
	codec := newTestCodec(t)

	got, err := codec.Decode("action=listing&channelcode=abc")
	require.NoError(t, err)
	require.Equal(t, mediaurl.Parameters{
		mediaurl.ParamAction:      mediaurl.StringValue("listing"),
		mediaurl.ParamChannelCode: mediaurl.StringValue("abc"),
	}, got)
}

func TestDecode_LeadingQuestionMark(t *testing.T) {
	codec := newTestCodec(t)

	got, err := codec.Decode("?action=listing&channelcode=abc&category=movies")
	require.NoError(t, err)
	require.Equal(t, "movies", got.Category())
}

func TestDecode_ChannelCodeDefaultsToAbsent(t *testing.T) {
	codec := newTestCodec(t)

	got, err := codec.Decode("channel=chn_nos&action=configurechannel")
	require.NoError(t, err)

	code, ok := got.Get(mediaurl.ParamChannelCode)
	require.True(t, ok, "channelcode must be backfilled")
	require.True(t, code.IsAbsent())
	require.Equal(t, &mediaurl.Channel{Module: "chn_nos"}, got.Channel())
}

func TestDecode_EmptyValueIsAbsent(t *testing.T) {
	codec := newTestCodec(t)

	got, err := codec.Decode("action=listing&channelcode=&category=")
	require.NoError(t, err)

	category, ok := got.Get(mediaurl.ParamCategory)
	require.True(t, ok)
	require.Equal(t, mediaurl.KindAbsent, category.Kind())
}

func TestDecode_IgnoresUnknownKeys(t *testing.T) {
	codec := newTestCodec(t)

	got, err := codec.Decode("action=listing&channelcode=abc&rnd=12345&foo=bar")
	require.NoError(t, err)
	_, ok := got.Get("foo")
	require.False(t, ok)
	_, ok = got.Get(mediaurl.ParamRandomLive)
	require.False(t, ok)
}

func TestDecode_Errors(t *testing.T) {
	codec := newTestCodec(t)

	tests := []struct {
		name  string
		query string
		want  error
	}{
		{"pair without equals", "action=listing&oops", mediaurl.ErrMalformedPair},
		{"pair with two equals", "action=listing&a=b=c", mediaurl.ErrMalformedPair},
		{"missing action", "channel=chn_nos&channelcode=x", mediaurl.ErrMissingAction},
		{"unknown action", "action=explode", mediaurl.ErrUnknownAction},
		{"empty action", "action=", mediaurl.ErrUnknownAction},
		{"missing required channel", "action=playvideo&pickle=abc", mediaurl.ErrMissingParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decode(tt.query)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, got, "no partial results")
		})
	}
}

func TestDecode_MissingParameterNamesActionAndParameter(t *testing.T) {
	codec := newTestCodec(t)

	_, err := codec.Decode("action=" + mediaurl.ActionListFolder)

	var mpe *mediaurl.MissingParameterError
	require.True(t, errors.As(err, &mpe))
	require.Equal(t, mediaurl.ParamChannel, mpe.Parameter)
	require.Equal(t, mediaurl.ActionListFolder, mpe.Action)
}

// For every action: dropping any required field fails, dropping optional
// fields does not.
func TestDecode_SchemaRequiredAndOptional(t *testing.T) {
	sch := listingSchema(t)
	codec := newTestCodec(t)

	for _, action := range sch.Actions() {
		fields, _ := sch.Lookup(action)

		full := map[string]string{mediaurl.ParamAction: action}
		for _, f := range fields {
			full[f.Name] = "x"
		}

		for i, f := range fields {
			t.Run(action+"/"+f.Name, func(t *testing.T) {
				q := buildQuery(full, f.Name)
				_, err := codec.Decode(q)
				switch {
				case f.Name == mediaurl.ParamChannelCode:
					// always backfilled
					require.NoError(t, err)
				case f.Optional:
					require.NoError(t, err, "optional field %d of %q", i, action)
				default:
					require.ErrorIs(t, err, mediaurl.ErrMissingParameter)
				}
			})
		}
	}
}

// buildQuery renders values without the skipped key. Pickles are replaced by
// category-like plain values, so fields named pickle are left out entirely
// to avoid depickling "x".
func buildQuery(values map[string]string, skip string) string {
	var parts []string
	for k, v := range values {
		if k == skip || k == mediaurl.ParamPickle {
			continue
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, "&")
}

func TestDecode_DepicklesItem(t *testing.T) {
	codec := newTestCodec(t)
	item := mediaurl.NewMediaItem("Folder", "https://example.com/folder")

	url, err := codec.Encode(EncodeRequest{
		Channel: &mediaurl.Channel{Module: "chn_nos", Code: "uzgjson"},
		Action:  mediaurl.ActionListFolder,
		Item:    item,
	})
	require.NoError(t, err)

	got, err := codec.DecodeURL(url)
	require.NoError(t, err)
	require.Equal(t, item, got.Item())

	pickled, ok := got.Get(mediaurl.ParamPickle)
	require.True(t, ok)
	require.Equal(t, mediaurl.KindString, pickled.Kind())
}

func TestDecode_DepickleFailure(t *testing.T) {
	boom := errors.New("boom")
	codec := New(testAddonPath, schema.Default(), failingCodec{err: boom}, logging.NewNullLogger())

	_, err := codec.Decode("channel=c&action=listfolder&pickle=abc")
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "listfolder")
}

func TestDecode_LogsOptionalOmissionAtTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelTrace)
	codec := New(testAddonPath, listingSchema(t), pickle.NewPickler(nil, logger), logger)

	_, err := codec.Decode("action=listing&channelcode=abc")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "[TRACE] Found optional parameter 'category' for 'listing'")
}

func TestEncode_Example(t *testing.T) {
	codec := newTestCodec(t)

	got, err := codec.Encode(EncodeRequest{
		Channel:  &mediaurl.Channel{Module: "foo", Code: "bar"},
		Action:   "listing",
		Category: "movies",
	})
	require.NoError(t, err)
	require.Equal(t, testAddonPath+"?channel=foo&channelcode=bar&action=listing&category=movies", got)
}

func TestEncode_Variants(t *testing.T) {
	codec := newTestCodec(t)

	tests := []struct {
		name string
		req  EncodeRequest
		want string
	}{
		{
			name: "action only",
			req:  EncodeRequest{Action: mediaurl.ActionAllFavourites},
			want: testAddonPath + "?action=allfavourites",
		},
		{
			name: "channel without code",
			req:  EncodeRequest{Channel: &mediaurl.Channel{Module: "chn_nos"}, Action: mediaurl.ActionConfigureChannel},
			want: testAddonPath + "?channel=chn_nos&channelcode=&action=configurechannel",
		},
		{
			name: "category only",
			req:  EncodeRequest{Action: mediaurl.ActionListCategory, Category: "kids"},
			want: testAddonPath + "?action=listcategory&category=kids",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Encode(tt.req)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.False(t, strings.HasSuffix(got, "&"))
		})
	}
}

func TestEncode_RequiresAction(t *testing.T) {
	codec := newTestCodec(t)
	_, err := codec.Encode(EncodeRequest{Category: "movies"})
	require.ErrorIs(t, err, mediaurl.ErrUsage)
}

func TestEncode_PickleFailure(t *testing.T) {
	boom := errors.New("boom")
	codec := New(testAddonPath, schema.Default(), failingCodec{err: boom}, logging.NewNullLogger())

	_, err := codec.Encode(EncodeRequest{Action: mediaurl.ActionPlayVideo, Item: mediaurl.NewMediaItem("x", "y")})
	require.ErrorIs(t, err, boom)
}

func TestEncode_RandomLive(t *testing.T) {
	codec := newTestCodec(t)
	item := mediaurl.NewMediaItem("Live", "https://example.com/live")
	item.Type = mediaurl.ItemTypeVideo
	item.IsLive = true

	req := EncodeRequest{
		Channel: &mediaurl.Channel{Module: "chn_nos", Code: "uzgjson"},
		Action:  mediaurl.ActionPlayVideo,
		Item:    item,
	}

	var prefixes []string
	for i := 0; i < 2; i++ {
		url, err := codec.Encode(req)
		require.NoError(t, err)

		head, nonce, ok := strings.Cut(url, "&"+mediaurl.ParamRandomLive+"=")
		require.True(t, ok, "live playback URL must carry a nonce: %s", url)
		require.NotContains(t, nonce, "&")

		n, err := strconv.Atoi(nonce)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, mediaurl.RandomLiveMin)
		require.LessOrEqual(t, n, mediaurl.RandomLiveMax)

		prefixes = append(prefixes, head)
	}
	require.Equal(t, prefixes[0], prefixes[1], "URLs may only differ in the nonce")
}

func TestEncode_RandomLiveDeterministic(t *testing.T) {
	next := 10000
	codec := newTestCodec(t, WithNonce(func() int { next++; return next }))
	item := mediaurl.NewMediaItem("Live", "u")
	item.IsLive = true

	first, err := codec.Encode(EncodeRequest{Action: mediaurl.ActionPlayVideo, Item: item})
	require.NoError(t, err)
	second, err := codec.Encode(EncodeRequest{Action: mediaurl.ActionPlayVideo, Item: item})
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(first, "&rnd=10001"), first)
	require.True(t, strings.HasSuffix(second, "&rnd=10002"), second)
}

func TestEncode_NoNonceUnlessLivePlayback(t *testing.T) {
	codec := newTestCodec(t, WithNonce(func() int { panic("nonce must not be drawn") }))

	live := mediaurl.NewMediaItem("Live", "u")
	live.IsLive = true
	vod := mediaurl.NewMediaItem("VOD", "u")

	for _, req := range []EncodeRequest{
		{Action: mediaurl.ActionDownloadVideo, Item: live},
		{Action: mediaurl.ActionPlayVideo, Item: vod},
		{Action: mediaurl.ActionPlayVideo},
	} {
		url, err := codec.Encode(req)
		require.NoError(t, err)
		require.NotContains(t, url, "rnd=")
	}
}

func TestRandomLiveBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := randomLive()
		if n < mediaurl.RandomLiveMin || n > mediaurl.RandomLiveMax {
			t.Fatalf("nonce %d out of range", n)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	tests := []struct {
		name     string
		channel  *mediaurl.Channel
		action   string
		category string
	}{
		{"listing with category", &mediaurl.Channel{Module: "foo", Code: "bar"}, "listing", "movies"},
		{"listing without code", &mediaurl.Channel{Module: "foo"}, "listing", "series"},
		{"category listing", nil, mediaurl.ActionListCategory, "kids"},
		{"configure channel", &mediaurl.Channel{Module: "chn_nos", Code: "uzgjson"}, mediaurl.ActionConfigureChannel, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := codec.Encode(EncodeRequest{Channel: tt.channel, Action: tt.action, Category: tt.category})
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(url, testAddonPath+"?"))

			got, err := codec.DecodeURL(url)
			require.NoError(t, err)
			require.Equal(t, tt.action, got.Action())
			require.Equal(t, tt.channel, got.Channel())
			if fields, _ := listingSchema(t).Lookup(tt.action); hasField(fields, mediaurl.ParamCategory) {
				require.Equal(t, tt.category, got.Category())
			}
		})
	}
}

func hasField(fields []schema.Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func TestDecodeURL_BareQuery(t *testing.T) {
	codec := newTestCodec(t)
	got, err := codec.DecodeURL("action=listing&channelcode=abc")
	require.NoError(t, err)
	require.Equal(t, "listing", got.Action())
}
