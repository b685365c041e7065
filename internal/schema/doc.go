// Package schema holds the per-action parameter table used to validate
// decoded plugin queries.
//
// Every action maps to an ordered list of fields. A field is either required
// or optional; decoding fails when a required field is missing and silently
// skips a missing optional one.
//
// Tables are immutable once built. Use With to derive a table with extra or
// replaced actions, for example from the actions block of mediaurl.yaml.
//
// # Positional declarations
//
// Older tables declare fields by position only. Positional converts them:
// a field is optional when its position is negative or when it is the last
// declared field of the action.
package schema
