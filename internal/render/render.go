// Package render prints decoded parameters and schemas for the CLI.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vvka-141/mediaurl/internal/schema"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

const absentText = "<absent>"

// Parameters writes one "key  value" line per parameter, sorted by key.
// Styling is applied only when styled is true.
func Parameters(w io.Writer, params mediaurl.Parameters, styled bool) error {
	keys := make([]string, 0, len(params))
	width := 0
	for k := range params {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := params[k]
		text, style := absentText, AbsentStyle
		switch v.Kind() {
		case mediaurl.KindString:
			text, style = v.String(), ValueStyle
		case mediaurl.KindItem:
			text, style = v.Item().String(), ItemStyle
		}

		key := fmt.Sprintf("%-*s", width, k)
		if styled {
			key, text = KeyStyle.Render(key), style.Render(text)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", key, text); err != nil {
			return err
		}
	}
	return nil
}

type jsonValue struct {
	Kind  string              `json:"kind"`
	Value string              `json:"value,omitempty"`
	Item  *mediaurl.MediaItem `json:"item,omitempty"`
}

// JSON writes params as an indented JSON object keyed by parameter name.
func JSON(w io.Writer, params mediaurl.Parameters) error {
	out := make(map[string]jsonValue, len(params))
	for k, v := range params {
		out[k] = jsonValue{Kind: v.Kind().String(), Value: v.String(), Item: v.Item()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Schema writes one line per action listing its fields. Optional fields are
// shown in brackets.
func Schema(w io.Writer, sch *schema.Schema, styled bool) error {
	actions := sch.Actions()
	width := 0
	for _, a := range actions {
		width = max(width, len(a))
	}

	for _, action := range actions {
		fields, _ := sch.Lookup(action)
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.Name
			if f.Optional {
				names[i] = "[" + f.Name + "]"
			}
		}

		name := fmt.Sprintf("%-*s", width, action)
		list := strings.Join(names, " ")
		if styled {
			name = KeyStyle.Render(name)
			list = RequiredStyle.Render(list)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", name, list); err != nil {
			return err
		}
	}
	return nil
}
