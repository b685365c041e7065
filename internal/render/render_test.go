package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mediaurl/internal/schema"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

func TestParameters_Plain(t *testing.T) {
	item := &mediaurl.MediaItem{GUID: "G1", Name: "News", Type: mediaurl.ItemTypeVideo}
	params := mediaurl.Parameters{
		mediaurl.ParamAction:      mediaurl.StringValue("playvideo"),
		mediaurl.ParamChannelCode: mediaurl.AbsentValue(),
		mediaurl.ParamItem:        mediaurl.ItemValue(item),
	}

	var buf bytes.Buffer
	require.NoError(t, Parameters(&buf, params, false))
	require.Equal(t,
		"action       playvideo\n"+
			"channelcode  <absent>\n"+
			"item         News [video] (G1)\n",
		buf.String())
}

func TestParameters_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Parameters(&buf, mediaurl.Parameters{}, true))
	require.Empty(t, buf.String())
}

func TestJSON(t *testing.T) {
	params := mediaurl.Parameters{
		mediaurl.ParamAction:   mediaurl.StringValue("listfolder"),
		mediaurl.ParamCategory: mediaurl.AbsentValue(),
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, params))

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, map[string]any{"kind": "string", "value": "listfolder"}, decoded["action"])
	require.Equal(t, map[string]any{"kind": "absent"}, decoded["category"])
}

func TestSchema_Plain(t *testing.T) {
	sch := schema.MustNew(map[string][]schema.Field{
		"listing": {{Name: "channel"}, {Name: "category", Optional: true}},
		"reset":   {{Name: "channel", Optional: true}},
	})

	var buf bytes.Buffer
	require.NoError(t, Schema(&buf, sch, false))
	require.Equal(t,
		"listing  channel [category]\n"+
			"reset    [channel]\n",
		buf.String())
}
