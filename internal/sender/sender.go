// Package sender translates typed checkout requests into HTTP calls.
// Senders are stateless and never retry; errors reach the caller unmodified
// apart from %w wrapping.
package sender

import (
	"net/url"
	"strings"
	"time"
)

// Options are the caller supplied parts of a request
type Options struct {
	// Include lists extra relations to embed, merged with the defaults
	Include []string
	Timeout time.Duration
}

// mergeIncludes appends extra to defaults, dropping blanks and duplicates
// while keeping first-seen order.
func mergeIncludes(defaults, extra []string) string {
	seen := make(map[string]bool, len(defaults)+len(extra))
	merged := make([]string, 0, len(defaults)+len(extra))

	for _, list := range [][]string{defaults, extra} {
		for _, include := range list {
			include = strings.TrimSpace(include)
			if include == "" || seen[include] {
				continue
			}
			seen[include] = true
			merged = append(merged, include)
		}
	}

	return strings.Join(merged, ",")
}

func includeParams(defaults, extra []string) url.Values {
	include := mergeIncludes(defaults, extra)
	if include == "" {
		return nil
	}
	return url.Values{"include": {include}}
}
