// Package wire implements the query-parameter serialization contract shared
// by the flow value types: explicit wire names, omission of unset fields,
// booleans as "true"/"false", and space-delimited scope lists.
package wire

import (
	"net/url"
	"strconv"
	"strings"
)

// SetNonEmpty sets key to value unless value is empty. Unset fields never
// appear in the serialized query string.
func SetNonEmpty(v url.Values, key, value string) {
	if value == "" {
		return
	}
	v.Set(key, value)
}

// SetBool serializes a tri-state boolean: nil is omitted entirely, true and
// false are emitted as "true" and "false". Absent and false are distinct at
// the wire level even when the server treats them the same.
func SetBool(v url.Values, key string, value *bool) {
	if value == nil {
		return
	}
	v.Set(key, strconv.FormatBool(*value))
}

// JoinScopes joins scope tokens with single spaces. Order and duplication are
// the caller's concern and are preserved as given.
func JoinScopes(scopes []string) string {
	return strings.Join(scopes, " ")
}

// AppendQuery attaches an encoded query string to a base URL, preserving any
// query component the base already carries.
func AppendQuery(base string, v url.Values) string {
	encoded := v.Encode()
	if encoded == "" {
		return base
	}
	if strings.Contains(base, "?") {
		return base + "&" + encoded
	}
	return base + "?" + encoded
}
