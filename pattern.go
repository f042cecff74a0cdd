package elapsed

import (
	"strings"
	"unicode/utf8"
)

// TokenKind is the format specifier letter of a token.
type TokenKind byte

const (
	TokenYear          TokenKind = 'y'
	TokenMonth         TokenKind = 'M'
	TokenDay           TokenKind = 'd'
	TokenHour24        TokenKind = 'H'
	TokenHour12        TokenKind = 'h'
	TokenMinute        TokenKind = 'm'
	TokenSecond        TokenKind = 's'
	TokenFraction      TokenKind = 'f'
	TokenMeridiem      TokenKind = 'T'
	TokenMeridiemLower TokenKind = 't'
	TokenZone          TokenKind = 'K'
)

const escapeRune = '\\'

// tokenRule describes how a run of one letter splits into tokens. A run of
// at least open letters is a single token (open == 0 disables that), shorter
// runs are cut greedily into the fixed widths. With alternate set, every
// token keeps the letter after it as text, so KKK is zone, "K", zone.
type tokenRule struct {
	open      int
	widths    []int
	alternate bool
}

var tokenRules = map[TokenKind]tokenRule{
	TokenYear:          {open: 4, widths: []int{2, 1}},
	TokenMonth:         {open: 4, widths: []int{3, 2, 1}},
	TokenDay:           {open: 4, widths: []int{3, 2, 1}},
	TokenHour24:        {open: 2, widths: []int{1}},
	TokenHour12:        {open: 2, widths: []int{1}},
	TokenMinute:        {open: 2, widths: []int{1}},
	TokenSecond:        {open: 2, widths: []int{1}},
	TokenFraction:      {open: 3, widths: []int{2, 1}},
	TokenMeridiem:      {open: 2, widths: []int{1}},
	TokenMeridiemLower: {open: 2, widths: []int{1}},
	TokenZone:          {widths: []int{1}, alternate: true},
}

func lookupTokenRule(r rune) (tokenRule, bool) {
	if r >= utf8.RuneSelf {
		return tokenRule{}, false
	}
	rule, ok := tokenRules[TokenKind(r)]
	return rule, ok
}

func (rule tokenRule) split(kind TokenKind, n int) []Segment {
	if rule.open > 0 && n >= rule.open {
		return []Segment{{Kind: kind, Width: n}}
	}

	out := make([]Segment, 0, 2)
	for n > 0 {
		for _, width := range rule.widths {
			if width <= n {
				out = append(out, Segment{Kind: kind, Width: width})
				n -= width
				break
			}
		}
	}
	return out
}

// Segment is either a literal run of text or a recognized token.
type Segment struct {
	Literal string
	Kind    TokenKind
	Width   int
}

// IsToken reports whether the segment is a token rather than literal text.
func (s Segment) IsToken() bool {
	return s.Kind != 0
}

// isName reports whether the token renders a month or weekday name.
func (s Segment) isName() bool {
	return (s.Kind == TokenMonth || s.Kind == TokenDay) && s.Width >= 3
}

// Pattern is a tokenized format pattern. The zero value renders as "".
type Pattern struct {
	source   string
	segments []Segment
}

// ParsePattern splits a pattern into literal and token segments. It never
// fails: characters that are not token letters are kept as literals and a
// backslash makes the following character literal.
func ParsePattern(pattern string) Pattern {
	p := Pattern{source: pattern}

	var literal strings.Builder
	flush := func() {
		if literal.Len() == 0 {
			return
		}
		p.segments = append(p.segments, Segment{Literal: literal.String()})
		literal.Reset()
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		if r == escapeRune && i+1 < len(runes) && runes[i+1] != '\n' {
			literal.WriteRune(runes[i+1])
			i += 2
			continue
		}

		rule, ok := lookupTokenRule(r)
		if !ok {
			literal.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}

		if rule.alternate {
			for j := 0; j < n; j++ {
				if j%2 == 1 {
					literal.WriteRune(r)
					continue
				}
				flush()
				p.segments = append(p.segments, Segment{Kind: TokenKind(r), Width: 1})
			}
			i += n
			continue
		}

		flush()
		p.segments = append(p.segments, rule.split(TokenKind(r), n)...)
		i += n
	}
	flush()

	return p
}

// Source returns the pattern text the Pattern was parsed from.
func (p Pattern) Source() string {
	return p.source
}

// Segments returns a copy of the parsed segments in order.
func (p Pattern) Segments() []Segment {
	if len(p.segments) == 0 {
		return nil
	}
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Tokens returns only the token segments.
func (p Pattern) Tokens() []Segment {
	var tokens []Segment
	for _, seg := range p.segments {
		if seg.IsToken() {
			tokens = append(tokens, seg)
		}
	}
	return tokens
}

// String re-emits the pattern in canonical form, escaping literal token
// letters and backslashes so that parsing the result yields the same tokens.
func (p Pattern) String() string {
	var b strings.Builder
	for _, seg := range p.segments {
		if seg.IsToken() {
			b.WriteString(strings.Repeat(string(rune(seg.Kind)), seg.Width))
			continue
		}
		for _, r := range seg.Literal {
			if _, ok := lookupTokenRule(r); ok || r == escapeRune {
				b.WriteRune(escapeRune)
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
