package search

import (
	"log"
	"sort"
	"strings"
)

// Collaborator is the external search endpoint the aggregator queries.
// The in-process Searcher satisfies it; tests substitute stubs.
type Collaborator interface {
	Search(query string) ([]Result, error)
}

// ScoreEntry is the aggregated score for one path within the current
// query evaluation. The entry set is rebuilt from scratch on every
// tag-set change, never accumulated across changes.
type ScoreEntry struct {
	Path       string
	Title      string
	TotalScore int
	MatchCount int
}

// Aggregator owns the active tag set. On every change it re-queries the
// collaborator, rebuilds the ranked score list, and reports top-result
// changes so the new best match can be highlighted.
type Aggregator struct {
	collaborator Collaborator
	tags         []string
	entries      []ScoreEntry
	topPath      string

	// OnTopChange fires when the rank-1 path changes and the session is
	// not manually pinned.
	OnTopChange func(path string)
	// OnEmpty fires when the tag set becomes empty: scores cleared,
	// highlight cleared, viewport returned to overview, pin cleared.
	OnEmpty func()
	// Pinned reports whether the user manually pinned a file, which
	// suppresses auto-highlighting of top changes.
	Pinned func() bool
}

// NewAggregator creates an aggregator querying the given collaborator
func NewAggregator(c Collaborator) *Aggregator {
	return &Aggregator{collaborator: c}
}

// Tags returns the active tags in insertion order
func (a *Aggregator) Tags() []string {
	out := make([]string, len(a.tags))
	copy(out, a.tags)
	return out
}

// Entries returns the current ranked score list
func (a *Aggregator) Entries() []ScoreEntry {
	return a.entries
}

// TopPath returns the current rank-1 path, or "" with no results
func (a *Aggregator) TopPath() string {
	return a.topPath
}

// AddTag appends a tag and re-evaluates. Empty and duplicate tags are
// rejected.
func (a *Aggregator) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range a.tags {
		if strings.EqualFold(t, tag) {
			return false
		}
	}
	a.tags = append(a.tags, tag)
	a.evaluate()
	return true
}

// RemoveLastTag drops the most recently added tag and re-evaluates
func (a *Aggregator) RemoveLastTag() bool {
	if len(a.tags) == 0 {
		return false
	}
	a.tags = a.tags[:len(a.tags)-1]
	a.evaluate()
	return true
}

// SetTags replaces the whole tag set (duplicates dropped, order kept)
// and re-evaluates.
func (a *Aggregator) SetTags(tags []string) {
	a.tags = a.tags[:0]
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		dup := false
		for _, t := range a.tags {
			if strings.EqualFold(t, tag) {
				dup = true
				break
			}
		}
		if !dup {
			a.tags = append(a.tags, tag)
		}
	}
	a.evaluate()
}

// Clear empties the tag set and re-evaluates
func (a *Aggregator) Clear() {
	a.tags = a.tags[:0]
	a.evaluate()
}

// evaluate rebuilds the score list from the current tag set. The score
// map resets on every call: aggregation is per query evaluation, not
// cumulative across tag-set changes.
func (a *Aggregator) evaluate() {
	a.entries = nil

	if len(a.tags) == 0 {
		a.topPath = ""
		if a.OnEmpty != nil {
			a.OnEmpty()
		}
		return
	}

	query := strings.Join(a.tags, " ")
	results, err := a.collaborator.Search(query)
	if err != nil {
		// Collaborator failures degrade to the empty-result state.
		log.Printf("search failed for %q: %v", query, err)
		a.topPath = ""
		return
	}

	byPath := make(map[string]int, len(results))
	for _, r := range results {
		if i, ok := byPath[r.Path]; ok {
			a.entries[i].TotalScore += r.Score
			a.entries[i].MatchCount++
			continue
		}
		byPath[r.Path] = len(a.entries)
		a.entries = append(a.entries, ScoreEntry{
			Path:       r.Path,
			Title:      r.Title,
			TotalScore: r.Score,
			MatchCount: 1,
		})
	}

	// Descending by total; ties keep the original result order.
	sort.SliceStable(a.entries, func(i, j int) bool {
		return a.entries[i].TotalScore > a.entries[j].TotalScore
	})

	if len(a.entries) == 0 {
		a.topPath = ""
		return
	}

	newTop := a.entries[0].Path
	changed := newTop != a.topPath
	a.topPath = newTop

	if changed && (a.Pinned == nil || !a.Pinned()) && a.OnTopChange != nil {
		a.OnTopChange(newTop)
	}
}
