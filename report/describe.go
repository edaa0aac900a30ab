package report

import (
	"unicode"
	"unicode/utf8"
)

// Describe returns the text Warn and Err append after the message for err.
// An operating system error number anywhere in the chain of err is spelled
// the way strerror(3) spells it, with errno 0 reading "Success". Other errors
// are described by their Error method.
func Describe(err error) string {
	if text, ok := errnoText(err); ok {
		return capitalize(text)
	}
	return err.Error()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
