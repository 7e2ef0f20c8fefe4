package middleware

import "strings"

// RoutePolicy is the process-wide table deciding which path prefixes are
// reachable without credentials. It is built once at startup from config;
// every other path requires an authenticated request.
type RoutePolicy struct {
	publicPrefixes []string
}

func NewRoutePolicy(publicPrefixes ...string) *RoutePolicy {
	return &RoutePolicy{publicPrefixes: publicPrefixes}
}

func (p *RoutePolicy) IsPublic(path string) bool {
	for _, prefix := range p.publicPrefixes {
		if path == strings.TrimSuffix(prefix, "/") || strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
