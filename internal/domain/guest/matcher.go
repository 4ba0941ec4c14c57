package guest

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Scoring constants are fixed; they are not configuration.
const (
	QualifyingScore = 50
	MaxCandidates   = 5

	containmentScore  = 40
	phoneticScore     = 30
	prefixScore       = 15
	tokenDistanceMax  = 2
	fullDistanceMax   = 3
	minPrefixTokenLen = 3
)

type ResultKind int

const (
	ResultNoMatch ResultKind = iota
	ResultExactMatch
	ResultAlreadySubmitted
	ResultCandidates
)

func (k ResultKind) String() string {
	switch k {
	case ResultExactMatch:
		return "exact_match"
	case ResultAlreadySubmitted:
		return "already_submitted"
	case ResultCandidates:
		return "candidates"
	default:
		return "no_match"
	}
}

type Candidate struct {
	Guest            *Guest
	Score            int
	AlreadySubmitted bool
}

// SearchResult carries Guest for ResultExactMatch and ResultAlreadySubmitted,
// Candidates for ResultCandidates, and nothing for ResultNoMatch.
type SearchResult struct {
	Kind       ResultKind
	Guest      *Guest
	Candidates []Candidate
}

// SubmittedSet holds the guest ids that already have a response.
type SubmittedSet map[int]struct{}

func NewSubmittedSet(ids ...int) SubmittedSet {
	s := make(SubmittedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s SubmittedSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// Resolve turns a single known guest into a result according to its submission status.
func Resolve(g *Guest, submitted SubmittedSet) SearchResult {
	if g == nil {
		return SearchResult{Kind: ResultNoMatch}
	}
	if submitted.Contains(g.id) {
		return SearchResult{Kind: ResultAlreadySubmitted, Guest: g}
	}
	return SearchResult{Kind: ResultExactMatch, Guest: g}
}

func Search(query SearchName, guests []*Guest, submitted SubmittedSet) SearchResult {
	for _, g := range guests {
		if g.nameLower == query.normalized {
			return Resolve(g, submitted)
		}
	}

	q := newScoredQuery(query)

	var candidates []Candidate
	for _, g := range guests {
		score := q.score(g)
		if score >= QualifyingScore {
			candidates = append(candidates, Candidate{
				Guest:            g,
				Score:            score,
				AlreadySubmitted: submitted.Contains(g.id),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	switch len(candidates) {
	case 0:
		return SearchResult{Kind: ResultNoMatch}
	case 1:
		return Resolve(candidates[0].Guest, submitted)
	default:
		return SearchResult{Kind: ResultCandidates, Candidates: candidates}
	}
}

// Score is the composite similarity of g to query.
func Score(query SearchName, g *Guest) int {
	return newScoredQuery(query).score(g)
}

// scoredQuery caches the query-side phonetic codes for one search.
type scoredQuery struct {
	name       SearchName
	firstCode  string
	lastCode   string
	multiToken bool
}

func newScoredQuery(query SearchName) scoredQuery {
	q := scoredQuery{
		name:       query,
		firstCode:  Metaphone(query.First()),
		multiToken: query.MultiToken(),
	}
	if q.multiToken {
		q.lastCode = Metaphone(query.Last())
	}
	return q
}

func (q scoredQuery) score(g *Guest) int {
	full := q.name.normalized
	guestTokens := strings.Fields(g.nameLower)
	var guestFirst, guestLast string
	if len(guestTokens) > 0 {
		guestFirst = guestTokens[0]
		guestLast = guestTokens[len(guestTokens)-1]
	}

	score := 0

	if strings.Contains(g.nameLower, full) || strings.Contains(full, g.nameLower) {
		score += containmentScore
	}

	if q.firstCode != "" && Metaphone(guestFirst) == q.firstCode {
		score += phoneticScore
	}
	if q.lastCode != "" && Metaphone(guestLast) == q.lastCode {
		score += phoneticScore
	}

	if d := distance(q.name.First(), guestFirst); d <= tokenDistanceMax {
		score += (tokenDistanceMax + 1 - d) * 10
	}
	if q.multiToken {
		if d := distance(q.name.Last(), guestLast); d <= tokenDistanceMax {
			score += (tokenDistanceMax + 1 - d) * 10
		}
	}

	if d := distance(full, g.nameLower); d <= fullDistanceMax {
		score += (fullDistanceMax + 1 - d) * 5
	}

	for _, qt := range q.name.tokens {
		if utf8.RuneCountInString(qt) < minPrefixTokenLen {
			continue
		}
		for _, gt := range guestTokens {
			if strings.HasPrefix(gt, qt) {
				score += prefixScore
			}
		}
	}

	return score
}

func distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}
