package core

import (
	"errors"
	"strings"
)

// shellSafe are the characters a token may contain without quoting.
const shellSafe = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_@%+=:,./-"

// ShellEscapePosix returns a single shell token using single-quote strategy,
// including surrounding single quotes.
// example: abc -> 'abc'
// example: a'b -> 'a'"'"'b'
// example: "" -> ''
func ShellEscapePosix(s string) string {
	if s == "" {
		return "''"
	}
	// Replace each single quote with: end quote, escaped single quote, start quote
	// 'a'b' => 'a'"'"'b'
	escaped := strings.ReplaceAll(s, "'", "'\"'\"'")
	return "'" + escaped + "'"
}

// ShellQuote quotes a token only when it contains characters that the
// shell would interpret.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	for _, r := range s {
		if !strings.ContainsRune(shellSafe, r) {
			return ShellEscapePosix(s)
		}
	}
	return s
}

// ShellJoin renders argv as a single shell command, quoting each token as needed.
func ShellJoin(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = ShellQuote(a)
	}
	return strings.Join(quoted, " ")
}

// SplitTokens splits a command line into tokens using POSIX shell quoting
// rules: whitespace separates tokens, single quotes preserve everything
// literally, double quotes allow backslash-escaped `"` and `\`, and a bare
// backslash escapes the next character. An unterminated quote is an error.
func SplitTokens(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inToken := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'':
			inToken = true
			j := i + 1
			for j < len(runes) && runes[j] != '\'' {
				cur.WriteRune(runes[j])
				j++
			}
			if j >= len(runes) {
				return nil, errUnterminatedQuote
			}
			i = j
		case r == '"':
			inToken = true
			j := i + 1
			for j < len(runes) && runes[j] != '"' {
				if runes[j] == '\\' && j+1 < len(runes) && (runes[j+1] == '"' || runes[j+1] == '\\') {
					j++
				}
				cur.WriteRune(runes[j])
				j++
			}
			if j >= len(runes) {
				return nil, errUnterminatedQuote
			}
			i = j
		case r == '\\':
			inToken = true
			if i+1 < len(runes) {
				i++
				cur.WriteRune(runes[i])
			}
		case r == ' ' || r == '\t':
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			inToken = true
			cur.WriteRune(r)
		}
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

var errUnterminatedQuote = errors.New("unterminated quote in command line")

// ShellCommand returns the shell command string that runs argv inside dir:
//
//	"cd '<dir>' && <argv...>"
//
// The directory is always quoted; argv tokens are quoted as needed.
func ShellCommand(dir string, argv []string) string {
	return "cd " + ShellEscapePosix(dir) + " && " + ShellJoin(argv)
}
