package search

import (
	"iter"
	"strings"
)

// Lines yields the lines of contents without their terminators.
// A "\r\n" terminator is stripped as a whole. A final line with no newline
// is still yielded, and empty contents yield nothing. Each line is a
// substring of contents, not a copy.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(contents) > 0 {
			i := strings.IndexByte(contents, '\n')
			if i < 0 {
				yield(contents)
				return
			}
			line := contents[:i]
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
			contents = contents[i+1:]
		}
	}
}

// Search returns the lines of contents that contain query, in order.
func Search(query, contents string) []string {
	results := []string{}
	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is like Search but compares lowercased text.
// Returned lines keep their original casing.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	results := []string{}
	for line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Filter runs the search variant selected by cfg.CaseSensitive.
func Filter(cfg *Config, contents string) []string {
	if cfg.CaseSensitive {
		return Search(cfg.Query, contents)
	}
	return SearchCaseInsensitive(cfg.Query, contents)
}
