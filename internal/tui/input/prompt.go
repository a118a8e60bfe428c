// Package input provides completion for the go-to-date prompt.
package input

import "strings"

// Suggestion describes a completion entry.
type Suggestion struct {
	Keyword     string
	Description string
}

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Keywords returns every relative date keyword the prompt understands.
func Keywords() []Suggestion {
	out := []Suggestion{
		{Keyword: "today", Description: "Today"},
		{Keyword: "tomorrow", Description: "Tomorrow"},
		{Keyword: "yesterday", Description: "Yesterday"},
		{Keyword: "next-week", Description: "Same day next week"},
		{Keyword: "last-week", Description: "Same day last week"},
	}
	for _, d := range weekdays {
		out = append(out,
			Suggestion{Keyword: "next-" + d, Description: "Next " + d},
			Suggestion{Keyword: "last-" + d, Description: "Previous " + d},
		)
	}
	for _, d := range weekdays {
		out = append(out, Suggestion{Keyword: d, Description: "Next " + d})
	}
	return out
}

// Matching returns suggestions whose keyword starts with the input.
// Input that starts with a digit is treated as an absolute date.
func Matching(input string, suggestions []Suggestion) []Suggestion {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" || (prefix[0] >= '0' && prefix[0] <= '9') {
		return nil
	}

	matches := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if strings.HasPrefix(s.Keyword, prefix) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Autocomplete returns the first matching keyword and whether it exists.
func Autocomplete(input string, suggestions []Suggestion) (string, bool) {
	matches := Matching(input, suggestions)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Keyword, true
}
