package mediaurl

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// KindAbsent marks a parameter that was present but empty.
	KindAbsent ValueKind = iota
	// KindString marks a plain string parameter.
	KindString
	// KindItem marks a decoded media item.
	KindItem
)

func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// Value is a decoded parameter: a string, nothing, or a media item.
// The zero value is absent.
type Value struct {
	kind ValueKind
	str  string
	item *MediaItem
}

// AbsentValue returns a Value with no content.
func AbsentValue() Value { return Value{} }

// StringValue wraps s. An empty s yields an absent value.
func StringValue(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: KindString, str: s}
}

// ItemValue wraps a decoded item. A nil item yields an absent value.
func ItemValue(item *MediaItem) Value {
	if item == nil {
		return Value{}
	}
	return Value{kind: KindItem, item: item}
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsAbsent() bool  { return v.kind == KindAbsent }

// String returns the string content, or "" for absent and item values.
func (v Value) String() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Item returns the media item, or nil when v does not hold one.
func (v Value) Item() *MediaItem {
	if v.kind != KindItem {
		return nil
	}
	return v.item
}

// Parameters maps parameter names to decoded values. A Parameters value is
// built fresh per decode and not modified afterwards.
type Parameters map[string]Value

// Get returns the value for name and whether the key was present.
func (p Parameters) Get(name string) (Value, bool) {
	v, ok := p[name]
	return v, ok
}

// Action returns the decoded action, or "".
func (p Parameters) Action() string { return p[ParamAction].String() }

// Category returns the decoded category, or "".
func (p Parameters) Category() string { return p[ParamCategory].String() }

// Item returns the depickled media item, or nil.
func (p Parameters) Item() *MediaItem { return p[ParamItem].Item() }

// Channel returns the addressed channel, or nil when no channel was given.
func (p Parameters) Channel() *Channel {
	module := p[ParamChannel].String()
	if module == "" {
		return nil
	}
	return &Channel{Module: module, Code: p[ParamChannelCode].String()}
}
