// Package params splits raw key=value input into pairs.
//
// Two flavors exist:
//   - ParseQuery splits a plugin query string ("a=1&b=2") and is strict:
//     every pair must contain exactly one '='.
//   - ParseKeyValuePairs handles repeated CLI flags (--item-field name=News)
//     and is lenient: everything after the first '=' is the value.
//
// Neither flavor unescapes keys or values.
package params
