package cli

import "errors"

// CaseInsensitiveEnv is the environment variable that switches the search
// to case-insensitive mode. Only its presence is checked.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// ErrNotEnoughArguments is returned by Resolve when the query or the
// filename is missing.
var ErrNotEnoughArguments = errors.New("not enough arguments")

// LookupFunc reads an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config holds the configuration for a single run.
type Config struct {
	// The literal text to look for.
	Query string

	// the file to search
	Filename string

	// false when CASE_INSENSITIVE is set.
	CaseSensitive bool
}

// Resolve builds a Config from the process arguments.
// args[0] is the program name and is ignored. The query and filename are
// taken verbatim from args[1] and args[2]; anything after them is ignored.
func Resolve(args []string, caseInsensitive bool) (Config, error) {
	if len(args) < 3 {
		return Config{}, ErrNotEnoughArguments
	}

	return Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: !caseInsensitive,
	}, nil
}

// CaseInsensitive reports whether CASE_INSENSITIVE is present according to lookup.
// An empty value still counts.
func CaseInsensitive(lookup LookupFunc) bool {
	if lookup == nil {
		return false
	}
	_, ok := lookup(CaseInsensitiveEnv)
	return ok
}
