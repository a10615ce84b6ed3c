package main

import (
	"net/url"
	"strings"
)

// dataKey prefixes the token in a share link: https://host/#data=<token>.
const dataKey = "data"

// tokenFromLink extracts the state token from a share link. The fragment
// (#data=...) wins; older links carried it in the query (?data=...).
// Returns "" when the link has no token or does not parse.
func tokenFromLink(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return ""
	}
	if token, ok := strings.CutPrefix(u.EscapedFragment(), dataKey+"="); ok {
		return token
	}
	return u.Query().Get(dataKey)
}

// shareLink appends token to base as a #data= fragment, replacing any
// fragment base already had.
func shareLink(base, token string) string {
	base, _, _ = strings.Cut(base, "#")
	return base + "#" + dataKey + "=" + token
}
