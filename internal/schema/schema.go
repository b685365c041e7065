package schema

import (
	"fmt"
	"sort"

	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

// Field is one parameter of an action.
type Field struct {
	Name     string `yaml:"name"`
	Optional bool   `yaml:"optional,omitempty"`
}

// Schema maps action names to their ordered fields.
// A Schema is safe for concurrent use because it is never modified.
type Schema struct {
	actions map[string][]Field
}

// New builds a schema from the given table. The table is copied.
func New(actions map[string][]Field) (*Schema, error) {
	s := &Schema{actions: make(map[string][]Field, len(actions))}
	for action, fields := range actions {
		if err := validate(action, fields); err != nil {
			return nil, err
		}
		s.actions[action] = append([]Field(nil), fields...)
	}
	return s, nil
}

// MustNew is like New but panics on an invalid table.
func MustNew(actions map[string][]Field) *Schema {
	s, err := New(actions)
	if err != nil {
		panic(err)
	}
	return s
}

func validate(action string, fields []Field) error {
	if action == "" {
		return fmt.Errorf("%w: action name is empty", mediaurl.ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: action %q field %d has no name", mediaurl.ErrInvalidConfig, action, i)
		}
		if f.Name == mediaurl.ParamAction {
			return fmt.Errorf("%w: action %q cannot declare %q as a field", mediaurl.ErrInvalidConfig, action, mediaurl.ParamAction)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: action %q declares %q twice", mediaurl.ErrInvalidConfig, action, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// Lookup returns a copy of the fields of action.
func (s *Schema) Lookup(action string) ([]Field, bool) {
	fields, ok := s.actions[action]
	if !ok {
		return nil, false
	}
	return append([]Field(nil), fields...), true
}

// Actions returns all action names in sorted order.
func (s *Schema) Actions() []string {
	names := make([]string, 0, len(s.actions))
	for name := range s.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of actions.
func (s *Schema) Len() int { return len(s.actions) }

// With returns a new schema where overrides replace or add actions.
// The receiver is left unchanged.
func (s *Schema) With(overrides map[string][]Field) (*Schema, error) {
	merged := make(map[string][]Field, len(s.actions)+len(overrides))
	for action, fields := range s.actions {
		merged[action] = fields
	}
	for action, fields := range overrides {
		merged[action] = fields
	}
	return New(merged)
}
