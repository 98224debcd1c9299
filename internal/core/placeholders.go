package core

import "strings"

// Placeholder tokens usable inside explicit command strings and the
// synthesized prompt.
const (
	TokenRoot     = "{ROOT}"
	TokenWorktree = "{WORKTREE}"
	TokenReport   = "{REPORT}"
	TokenInbox    = "{INBOX}"
	TokenTask     = "{TASK}"
	TokenName     = "{NAME}"
)

// Placeholder is one token/value substitution pair.
type Placeholder struct {
	Token string
	Value string
}

// Mapping is an ordered placeholder list. Substitution order is part of
// the contract, so this is a slice rather than a map.
type Mapping []Placeholder

// Expand substitutes every placeholder token in s, in mapping order.
// Expanded values are not re-scanned; unknown tokens are left verbatim.
func (m Mapping) Expand(s string) string {
	for _, p := range m {
		s = strings.ReplaceAll(s, p.Token, p.Value)
	}
	return s
}

// ExpandAll applies Expand to every element of argv, returning a new slice.
func (m Mapping) ExpandAll(argv []string) []string {
	out := make([]string, len(argv))
	for i, s := range argv {
		out[i] = m.Expand(s)
	}
	return out
}

// Value returns the mapped value for token, or "" if absent.
func (m Mapping) Value(token string) string {
	for _, p := range m {
		if p.Token == token {
			return p.Value
		}
	}
	return ""
}
