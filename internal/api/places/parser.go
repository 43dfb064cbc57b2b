package places

import (
	"regexp"
	"strings"
)

// Candidate is a place name awaiting coordinate resolution.
type Candidate struct {
	Name  string
	State string
}

// Header is a destination line split into its state and parenthesized places text.
type Header struct {
	State      string
	PlacesText string
	HasGroup   bool
}

const (
	unknownState = "Unknown"
	countryState = "India"
)

var (
	headerPattern     = regexp.MustCompile(`^\d+\.`)
	innerParenPattern = regexp.MustCompile(`\([^()]*\)`)
	starPattern       = regexp.MustCompile(`\s*\*\s*`)
	separatorPattern  = regexp.MustCompile(`(?i)\s*(?:,|&|\band\b)\s*`)
)

// IsHeader reports whether a trimmed line introduces a destination ("1. ...").
func IsHeader(line string) bool {
	return headerPattern.MatchString(strings.TrimSpace(line))
}

// SplitHeader separates a destination header into state name and places text.
// The first balanced "(...)" group wins; without one the text up to the first
// comma is returned as State and HasGroup is false.
func SplitHeader(line string) Header {
	body := strings.TrimSpace(headerPattern.ReplaceAllString(strings.TrimSpace(line), ""))

	open, closeIdx := firstGroup(body)
	if open >= 0 && strings.TrimSpace(body[open+1:closeIdx]) != "" {
		state := NormalizeName(body[:open])
		if state == "" {
			state = unknownState
		}
		return Header{
			State:      state,
			PlacesText: strings.TrimSpace(body[open+1 : closeIdx]),
			HasGroup:   true,
		}
	}

	name, _, _ := strings.Cut(body, ",")
	return Header{State: NormalizeName(name)}
}

// firstGroup returns the indexes of the first "(" and its matching ")".
func firstGroup(s string) (int, int) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return -1, -1
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return open, i
			}
		}
	}
	return -1, -1
}

// Tokenize turns a places text like "A, B & C and D" into individual names.
func Tokenize(placesText string) []string {
	text := placesText
	for innerParenPattern.MatchString(text) {
		text = innerParenPattern.ReplaceAllString(text, "")
	}
	text = starPattern.ReplaceAllString(text, ", ")

	var names []string
	for _, part := range separatorPattern.Split(text, -1) {
		if name := NormalizeName(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// NormalizeName trims whitespace and stray markdown or punctuation from a name.
func NormalizeName(s string) string {
	s = innerParenPattern.ReplaceAllString(s, "")
	return strings.Trim(s, " \t\r*:;.-\"'`")
}

// Parse walks the recommendation text and returns candidates in first-seen order.
func Parse(text string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !IsHeader(line) {
			continue
		}

		h := SplitHeader(line)
		if !h.HasGroup {
			if h.State != "" {
				out = append(out, Candidate{Name: h.State, State: countryState})
			}
			continue
		}
		for _, name := range Tokenize(h.PlacesText) {
			out = append(out, Candidate{Name: name, State: h.State})
		}
	}
	return out
}
