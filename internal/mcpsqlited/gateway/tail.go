package gateway

import (
	"errors"
	"strings"
)

// ErrMultipleStatements is returned, before anything runs, when a query
// holds more than one statement.
var ErrMultipleStatements = errors.New("You can only execute one statement at a time.")

// splitFirstStatement returns query cut just past its first complete
// statement and whether anything other than whitespace or comments
// follows it. The driver treats a comment-only remainder as one more
// statement, so the trailing trivia is dropped.
func splitFirstStatement(query string) (string, bool) {
	end, ok := firstStatementEnd(query)
	if !ok {
		return query, false
	}
	if !onlyTrivia(query[end:]) {
		return query, true
	}
	return query[:end], false
}

// firstStatementEnd returns the offset just past the first top-level ';'.
// String literals, quoted identifiers and comments are skipped. Inside the
// BEGIN ... END body of a CREATE TRIGGER only "END ;" closes the statement.
func firstStatementEnd(query string) (int, bool) {
	words := []string{}
	lastWord := ""
	inTriggerBody := false

	i := 0
	for i < len(query) {
		ch := query[i]

		switch {
		case ch == '\'' || ch == '"' || ch == '`':
			i = skipQuoted(query, i+1, ch)
			lastWord = ""
		case ch == '[':
			i = skipPast(query, i+1, "]")
			lastWord = ""
		case ch == '-' && peekChar(query, i) == '-':
			i = skipPast(query, i+2, "\n")
		case ch == '/' && peekChar(query, i) == '*':
			i = skipPast(query, i+2, "*/")
		case isWordChar(ch):
			start := i
			for i < len(query) && isWordChar(query[i]) {
				i++
			}
			word := strings.ToUpper(query[start:i])
			if len(words) < 3 {
				words = append(words, word)
			}
			if word == "BEGIN" && isCreateTrigger(words) {
				inTriggerBody = true
			}
			lastWord = word
		case ch == ';':
			if !inTriggerBody || lastWord == "END" {
				return i + 1, true
			}
			lastWord = ""
			i++
		default:
			if !isSpace(ch) {
				lastWord = ""
			}
			i++
		}
	}

	return len(query), false
}

// onlyTrivia reports whether s holds nothing but whitespace and comments.
func onlyTrivia(s string) bool {
	i := 0
	for i < len(s) {
		switch {
		case isSpace(s[i]):
			i++
		case s[i] == '-' && peekChar(s, i) == '-':
			i = skipPast(s, i+2, "\n")
		case s[i] == '/' && peekChar(s, i) == '*':
			i = skipPast(s, i+2, "*/")
		default:
			return false
		}
	}
	return true
}

// skipQuoted returns the offset after the closing quote. A doubled quote
// is an escaped one. Unterminated literals run to the end.
func skipQuoted(s string, from int, quote byte) int {
	for i := from; i < len(s); i++ {
		if s[i] != quote {
			continue
		}
		if peekChar(s, i) == quote {
			i++
			continue
		}
		return i + 1
	}
	return len(s)
}

// skipPast returns the offset after the next terminator, or the end of s.
func skipPast(s string, from int, terminator string) int {
	idx := strings.Index(s[from:], terminator)
	if idx < 0 {
		return len(s)
	}
	return from + idx + len(terminator)
}

func peekChar(s string, i int) byte {
	if i+1 >= len(s) {
		return 0
	}
	return s[i+1]
}

func isCreateTrigger(words []string) bool {
	if len(words) < 2 || words[0] != "CREATE" {
		return false
	}
	if words[1] == "TRIGGER" {
		return true
	}
	return len(words) > 2 &&
		(words[1] == "TEMP" || words[1] == "TEMPORARY") &&
		words[2] == "TRIGGER"
}

func isWordChar(ch byte) bool {
	return ch == '_' || ch == '$' || ch >= 0x80 ||
		('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9')
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
