// Package query converts between plugin invocation URLs and typed parameters.
//
// Encode builds "<addon-path>?k=v&k=v" from a channel, an action, an
// optional media item and an optional category. Decode parses such a query
// string and validates it against the action schema.
//
// Values are never escaped or unescaped. Media items travel as pickles,
// which are already safe to embed; other values must not contain '&' or '='.
//
// # Example Usage
//
//	codec := query.New(addonPath, schema.Default(), pickler, logger)
//	url, err := codec.Encode(query.EncodeRequest{
//	    Channel: &mediaurl.Channel{Module: "chn_nos", Code: "uzgjson"},
//	    Action:  mediaurl.ActionListFolder,
//	    Item:    folder,
//	})
//
//	params, err := codec.DecodeURL(url)
//	item := params.Item()
//
// # Thread Safety
//
// A Codec holds no mutable state and is safe for concurrent use.
package query
