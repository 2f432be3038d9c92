package gate

import "strings"

type Level int

const (
	LevelAuthenticated Level = iota
	LevelAdmin
)

// PolicyEntry protects every path under Prefix. When Segments is set the path
// must additionally contain one of them as a whole path segment, so
// /api/auctions/<id>/bid is protected while /api/auctions/<id>/details is not.
type PolicyEntry struct {
	Prefix   string
	Segments []string
	Level    Level
}

func (e PolicyEntry) Matches(path string) bool {
	if strings.HasSuffix(e.Prefix, "/") {
		if !strings.HasPrefix(path, e.Prefix) {
			return false
		}
	} else if path != e.Prefix && !strings.HasPrefix(path, e.Prefix+"/") {
		return false
	}

	if len(e.Segments) == 0 {
		return true
	}

	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		for _, seg := range e.Segments {
			if part == seg {
				return true
			}
		}
	}
	return false
}

// PolicyTable is loaded once at startup and never mutated, so it is safe to
// share across requests without locking.
type PolicyTable []PolicyEntry

func (t PolicyTable) Match(path string) (PolicyEntry, bool) {
	for _, e := range t {
		if e.Matches(path) {
			return e, true
		}
	}
	return PolicyEntry{}, false
}

func DefaultPolicy() PolicyTable {
	return PolicyTable{
		{Prefix: "/dashboard", Level: LevelAuthenticated},
		{Prefix: "/api/dashboard", Level: LevelAuthenticated},
		{Prefix: "/api/auctions/", Segments: []string{"bid", "watchlist"}, Level: LevelAuthenticated},
		{Prefix: "/api/admin", Level: LevelAdmin},
	}
}
