package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether an Origin header value matches any configured
// host pattern. Patterns compare against the origin's "host[:port]" and may
// carry a "*." subdomain wildcard or a ":*" port wildcard.
func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	for _, pattern := range patterns {
		if hostMatches(pattern, host) {
			return true
		}
	}
	return false
}

func hostMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	}
	return false
}
