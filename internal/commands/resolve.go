package commands

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Partial matches beyond this count are reported as "too many" rather
	// than listed for disambiguation.
	maxPartialMatches = 5
	// Queries shorter than this never auto-complete to a unique partial
	// match; short fragments are too likely to be accidental.
	minAutoCompleteLen = 3
)

// Outcome classifies the result of resolving a textual reference.
type Outcome int

const (
	ResolvedExact Outcome = iota
	ResolvedNone
	ResolvedAmbiguous
	ResolvedTooMany
	ResolvedBareArticle
)

// Resolution is the result of matching a query against a candidate set.
// Entity is only meaningful for ResolvedExact; Partials carries the
// candidate names for ResolvedAmbiguous.
type Resolution[T any] struct {
	Outcome  Outcome
	Entity   T
	Partials []string
}

// Resolve matches query against candidates using their name and, when id
// is non-nil, their decimal id. Matching is case-insensitive and tolerates
// a single user-typed leading "the". An exact hit on name, id, or
// "the "+name wins immediately in iteration order. With no exact hit,
// substring partials are collected; a query of at least three characters
// with exactly one partial retries once with that full name, which is
// guaranteed to land in the exact branch, so the retry loop is bounded at
// one extra pass.
//
// Callers scope the candidate slice (a room's items, a room's exits, the
// global room set) before calling; dangling ids must already have been
// filtered out.
func Resolve[T any](query string, candidates []T, name func(T) string, id func(T) int) Resolution[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "the" {
		return Resolution[T]{Outcome: ResolvedBareArticle}
	}

	for pass := 0; pass < 2; pass++ {
		stripped := strings.TrimPrefix(q, "the ")
		var partials []string
		for _, c := range candidates {
			n := strings.ToLower(name(c))
			if q == n || q == "the "+n || (id != nil && q == strconv.Itoa(id(c))) {
				return Resolution[T]{Outcome: ResolvedExact, Entity: c}
			}
			if strings.Contains(n, q) || strings.Contains(n, stripped) {
				partials = append(partials, n)
			}
		}

		if len(q) >= minAutoCompleteLen && len(partials) == 1 {
			q = partials[0]
			continue
		}

		switch {
		case len(partials) > maxPartialMatches:
			return Resolution[T]{Outcome: ResolvedTooMany}
		case len(partials) > 0:
			return Resolution[T]{Outcome: ResolvedAmbiguous, Partials: partials}
		default:
			return Resolution[T]{Outcome: ResolvedNone}
		}
	}

	return Resolution[T]{Outcome: ResolvedNone}
}

// resolutionError turns a failed resolution into the command's single
// user-facing line. kind names what was being looked for ("item", "exit",
// "room") and scope describes where ("in this room", "in your inventory").
func resolutionError[T any](cmd string, res Resolution[T], kind, scope, query string) error {
	switch res.Outcome {
	case ResolvedBareArticle:
		return NewUserError(cmd + ": Very funny.")
	case ResolvedAmbiguous:
		return NewUserError(fmt.Sprintf("%s: Did you mean one of: %s", cmd, strings.Join(res.Partials, ", ")))
	case ResolvedTooMany:
		return NewUserError(cmd + ": Too many possible matches.")
	default:
		return NewUserError(fmt.Sprintf("%s: No such %s %s: %s", cmd, kind, scope, query))
	}
}
