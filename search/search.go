package search

import "strings"

// Lines splits contents on newline boundaries.
// Terminators are not kept: a trailing "\r" is dropped from each line and a
// final "\n" does not produce an extra empty line. Empty contents has no lines.
//
// The returned lines are substrings of contents and share its memory.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Search returns every line of contents that contains query, in file order.
// Matching is a literal, case-sensitive substring check.
func Search(query, contents string) []string {
	results := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is like Search but lowercases both the query and
// each line before comparing. The original line is returned, not the
// lowercased copy.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	results := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Find runs Search or SearchCaseInsensitive depending on caseSensitive.
func Find(query, contents string, caseSensitive bool) []string {
	if caseSensitive {
		return Search(query, contents)
	}
	return SearchCaseInsensitive(query, contents)
}
