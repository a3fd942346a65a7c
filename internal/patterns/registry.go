package patterns

import (
	"regexp"

	gocache "github.com/patrickmn/go-cache"
)

// RegexPrefix marks a group entry as an explicit regular expression.
// Entries without the prefix are literal words/phrases, matched
// case-insensitively on word boundaries.
const RegexPrefix = "re:"

// Registry holds named groups of matchers used by the scoring components.
//
// Compilation is memoized by source string, so repeated lookups are O(1)
// after first use. The compiled cache is per-registry: injecting a fixture
// registry in tests never mutates state visible to other analyses.
type Registry struct {
	groups   map[string][]string
	compiled *gocache.Cache
}

// NewRegistry creates a registry from named groups of matcher strings.
// A nil or empty map falls back to the built-in defaults.
func NewRegistry(groups map[string][]string) *Registry {
	if len(groups) == 0 {
		groups = DefaultGroups()
	}
	return &Registry{
		groups:   groups,
		compiled: gocache.New(gocache.NoExpiration, 0),
	}
}

// MatchesAny reports whether text matches at least one matcher in the group.
// An unknown group never matches.
func (r *Registry) MatchesAny(text, group string) bool {
	for _, src := range r.groups[group] {
		if re := r.compile(src); re != nil && re.MatchString(text) {
			return true
		}
	}
	return false
}

// CountMatches returns the number of matchers in the group that match text.
func (r *Registry) CountMatches(text, group string) int {
	count := 0
	for _, src := range r.groups[group] {
		if re := r.compile(src); re != nil && re.MatchString(text) {
			count++
		}
	}
	return count
}

// FindMatches returns the source strings of all matchers in the group that
// match text, in group order.
func (r *Registry) FindMatches(text, group string) []string {
	var matched []string
	for _, src := range r.groups[group] {
		if re := r.compile(src); re != nil && re.MatchString(text) {
			matched = append(matched, src)
		}
	}
	return matched
}

// FirstMatch returns the matched substring of the first matcher in the group
// that matches text, or "" when nothing matches.
func (r *Registry) FirstMatch(text, group string) string {
	for _, src := range r.groups[group] {
		if re := r.compile(src); re != nil {
			if m := re.FindString(text); m != "" {
				return m
			}
		}
	}
	return ""
}

// Groups returns the names of all groups with the given prefix, in no
// particular order. An empty prefix returns every group name.
func (r *Registry) Groups(prefix string) []string {
	var names []string
	for name := range r.groups {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			names = append(names, name)
		}
	}
	return names
}

// compile returns the compiled pattern for a matcher source string,
// memoizing by source. Invalid explicit regexes compile to nil and
// never match.
func (r *Registry) compile(src string) *regexp.Regexp {
	if cached, found := r.compiled.Get(src); found {
		re, _ := cached.(*regexp.Regexp)
		return re
	}

	var re *regexp.Regexp
	if len(src) > len(RegexPrefix) && src[:len(RegexPrefix)] == RegexPrefix {
		re, _ = regexp.Compile("(?i)" + src[len(RegexPrefix):])
	} else {
		re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(src) + `\b`)
	}

	// Cache nil for invalid regexes too, so bad entries fail once.
	r.compiled.Set(src, re, gocache.NoExpiration)
	return re
}
