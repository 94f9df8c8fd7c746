package models

import (
	"strings"
	"unicode/utf8"
)

// ResponseEntry is one backend's outcome in a comparison. Exactly one of Text
// and Error is set.
type ResponseEntry struct {
	Source string  `json:"source"`
	Text   *string `json:"text"`
	Error  *string `json:"error"`
	Length int     `json:"length"`
}

// ComparisonResult holds the labeled outcomes of one comparison run, resample
// first and alternative second.
type ComparisonResult struct {
	Prompt    string          `json:"prompt"`
	Responses []ResponseEntry `json:"responses"`
}

// SucceededEntry builds the entry for a backend that returned text.
func SucceededEntry(source, text string) ResponseEntry {
	return ResponseEntry{
		Source: source,
		Text:   &text,
		Length: utf8.RuneCountInString(text),
	}
}

// FailedEntry builds the entry for a backend that failed. The message is
// forced to valid UTF-8.
func FailedEntry(source string, err error) ResponseEntry {
	msg := strings.ToValidUTF8(err.Error(), "\uFFFD")
	return ResponseEntry{
		Source: source,
		Error:  &msg,
	}
}

// Failures counts entries that carry an error.
func (r *ComparisonResult) Failures() int {
	n := 0
	for _, e := range r.Responses {
		if e.Error != nil {
			n++
		}
	}
	return n
}
