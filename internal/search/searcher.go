// Package search scores indexed files against free-text queries and
// aggregates multi-tag results into a ranked list.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/fttower/orbit/internal/index"
	"github.com/fttower/orbit/internal/model"
)

// Scoring weights per matched term.
const (
	scoreFilename   = 100
	scoreTitle      = 75
	scoreFolder     = 50
	scoreKeyword    = 40
	scoreHeader     = 30
	scoreFuzzyTitle = 25
	scoreContent    = 10 // per occurrence
)

// DefaultMaxResults caps how many results one query returns
const DefaultMaxResults = 50

// Result is one scored file for a query
type Result struct {
	Path  string
	Title string
	Score int
}

// Searcher evaluates queries against an index snapshot
type Searcher struct {
	idx        *index.Index
	maxResults int
}

// NewSearcher creates a searcher over the given index
func NewSearcher(idx *index.Index, maxResults int) *Searcher {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Searcher{idx: idx, maxResults: maxResults}
}

// SetIndex swaps the index snapshot, e.g. after a rebuild
func (s *Searcher) SetIndex(idx *index.Index) {
	s.idx = idx
}

// Search splits the query into terms, scores every indexed file, and
// returns files with a positive score sorted descending. The sort is
// stable so equal scores keep index order. The error return satisfies
// the Collaborator contract; the in-process searcher never fails.
func (s *Searcher) Search(query string) ([]Result, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || s.idx == nil {
		return nil, nil
	}

	var results []Result
	for i := range s.idx.Files {
		f := &s.idx.Files[i]
		total := 0
		for _, term := range terms {
			total += scoreFile(f, term)
		}
		if total > 0 {
			results = append(results, Result{Path: f.Path, Title: f.Title, Score: total})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}
	return results, nil
}

// scoreFile computes the weighted score of one file for one term
func scoreFile(f *index.File, term string) int {
	score := 0

	if strings.Contains(strings.ToLower(f.Name), term) {
		score += scoreFilename
	}

	// Folder match counts once per term no matter how many segments hit.
	for _, folder := range strings.Split(strings.ToLower(f.Path), model.PathSeparator) {
		if strings.Contains(folder, term) {
			score += scoreFolder
			break
		}
	}

	score += strings.Count(strings.ToLower(f.Content), term) * scoreContent

	title := strings.ToLower(f.Title)
	if strings.Contains(title, term) {
		score += scoreTitle
	} else if fuzzy.MatchFold(term, title) {
		score += scoreFuzzyTitle
	}

	for _, header := range f.Headers {
		if strings.Contains(strings.ToLower(header), term) {
			score += scoreHeader
		}
	}
	for _, keyword := range f.Keywords {
		if strings.Contains(strings.ToLower(keyword), term) {
			score += scoreKeyword
		}
	}

	return score
}

// SuggestTags returns indexed titles that fuzzy-match the partial tag,
// for tag bar completion.
func (s *Searcher) SuggestTags(partial string, limit int) []string {
	if s.idx == nil || partial == "" {
		return nil
	}
	var titles []string
	for i := range s.idx.Files {
		titles = append(titles, s.idx.Files[i].Title)
	}
	matches := fuzzy.RankFindFold(partial, titles)
	sort.Stable(matches)
	var out []string
	for _, m := range matches {
		out = append(out, m.Target)
		if len(out) >= limit {
			break
		}
	}
	return out
}
