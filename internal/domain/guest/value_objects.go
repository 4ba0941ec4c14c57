package guest

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"wedding-rsvp/internal/pkg/errs"
)

const (
	MinSearchNameLength = 2
	MaxSearchNameLength = 100
	MaxPersonNameLength = 100
)

var (
	ErrInvalidSearchName = errs.NewKind("invalid search name", errs.ErrInvalidInput)
	ErrInvalidPersonName = errs.NewKind("invalid person name", errs.ErrInvalidInput)
)

var (
	// letters of any script, whitespace, apostrophes, hyphens, periods
	namePattern = regexp.MustCompile(`^[\p{L}\s'\-.]+$`)
	tagPattern  = regexp.MustCompile(`<[^>]*(>|$)`)
)

// StripTags removes markup tags, including an unterminated trailing one.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

func IsValidName(s string) bool {
	return namePattern.MatchString(s)
}

// SearchName is free-text guest search input that passed validation.
type SearchName struct {
	display    string
	normalized string
	tokens     []string
}

func NewSearchName(s string) (SearchName, error) {
	s = strings.TrimSpace(StripTags(strings.TrimSpace(s)))

	length := utf8.RuneCountInString(s)
	if length < MinSearchNameLength || length > MaxSearchNameLength {
		return SearchName{}, ErrInvalidSearchName
	}
	if !IsValidName(s) {
		return SearchName{}, ErrInvalidSearchName
	}

	normalized := strings.ToLower(s)
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return SearchName{}, ErrInvalidSearchName
	}

	return SearchName{
		display:    s,
		normalized: normalized,
		tokens:     tokens,
	}, nil
}

func (n SearchName) String() string     { return n.display }
func (n SearchName) Normalized() string { return n.normalized }
func (n SearchName) First() string      { return n.tokens[0] }
func (n SearchName) Last() string       { return n.tokens[len(n.tokens)-1] }
func (n SearchName) MultiToken() bool   { return len(n.tokens) > 1 }

func (n SearchName) Tokens() []string {
	out := make([]string, len(n.tokens))
	copy(out, n.tokens)
	return out
}

// NewOptionalPersonName validates a free-text name that may be left blank,
// such as the name of a plus-one.
func NewOptionalPersonName(s string) (string, error) {
	s = strings.TrimSpace(StripTags(s))
	if s == "" {
		return "", nil
	}
	if utf8.RuneCountInString(s) > MaxPersonNameLength || !IsValidName(s) {
		return "", ErrInvalidPersonName
	}
	return s, nil
}
