// Package progname provides the display name of the running program.
//
// The name is derived once from the invocation argument (os.Args[0]) and
// cached for the lifetime of the process.
package progname

import (
	"os"
	"strings"
	"sync"
	"unicode/utf8"
)

// Fallback is returned when no usable name can be derived from the
// invocation argument.
const Fallback = "(unknown)"

var name = sync.OnceValue(func() string {
	return fromArgs(os.Args)
})

// Name returns the name the program was invoked as, with any leading
// directories removed. The value is computed on the first call; every
// later call, from any goroutine, returns the same string.
func Name() string {
	return name()
}

// Resolve reduces an invocation path to its final component.
// Trailing separators are ignored, so "/usr/local/bin/foo/" yields "foo".
// Fallback is returned for an empty path, a path consisting only of
// separators, or a path that is not valid UTF-8.
func Resolve(arg0 string) string {
	if !utf8.ValidString(arg0) {
		return Fallback
	}
	trimmed := strings.TrimRightFunc(arg0, isSeparator)
	base := trimmed[strings.LastIndexFunc(trimmed, isSeparator)+1:]
	if len(base) == 0 {
		return Fallback
	}
	return base
}

func fromArgs(args []string) string {
	if len(args) == 0 {
		return Fallback
	}
	return Resolve(args[0])
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}
