// Package fallback implements the content-resolution rule shared by seeding
// and the page renderers: a fetched document wins, the hardcoded default set
// fills the gap.
package fallback

// Resolve returns fetched when present, otherwise def.
func Resolve[T any](fetched *T, def T) T {
	if fetched != nil {
		return *fetched
	}
	return def
}

// ResolveSlice returns fetched when it has elements, otherwise def.
func ResolveSlice[T any](fetched []T, def []T) []T {
	if len(fetched) > 0 {
		return fetched
	}
	return def
}
