package parse

import (
	"fmt"

	"github.com/google/shlex"
)

// Split splits a shell-quoted word list ("start stop 'two words'") into words.
// Quotes and backslash escapes follow POSIX shell rules; an unquoted # starts a comment.
func Split(s string) ([]string, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("failed to split word list %q: %w", s, err)
	}

	return words, nil
}
