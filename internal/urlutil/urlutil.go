// Package urlutil contains functions to help assembling query-encoded URLs.
package urlutil

import (
	"net/url"
	"strings"
)

// QueryParam is a single key/value entry of a query string.
type QueryParam struct {
	Key   string
	Value string
}

// EncodeQuery renders params as a query string, keeping the given order.
// This is unlike url.Values.Encode which sorts entries by key.
func EncodeQuery(params []QueryParam) string {
	var query strings.Builder
	for i, param := range params {
		if i > 0 {
			query.WriteByte('&')
		}
		query.WriteString(Escape(param.Key))
		query.WriteByte('=')
		query.WriteString(Escape(param.Value))
	}

	return query.String()
}

// Escape percent-encodes s as a URI query component, encoding spaces as %20
// instead of the form-encoding plus sign produced by url.QueryEscape.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
