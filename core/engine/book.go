package engine

import "regexp"

// Book is one item of the engine's collection. The same shape is used on the
// service API, so the JSON keys here are the public contract.
type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	TotalCopies int    `json:"totalCopies"`
	Available   int    `json:"available"`
}

var whitespace = regexp.MustCompile(`\s+`)

// EscapeArg makes a string safe to pass as a positional engine argument.
// The engine splits its argv on whitespace, so runs of whitespace are
// substituted with underscores before invocation.
func EscapeArg(s string) string {
	return whitespace.ReplaceAllString(s, "_")
}
