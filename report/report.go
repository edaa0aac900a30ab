// Package report writes diagnostics to the standard error stream in the
// traditional format of command-line utilities:
//
//	prog: message
//	prog: message: No such file or directory
//
// The x variants (Warnx, Errx) omit the error description. The Err variants
// terminate the process after writing the line and never return.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/JaMo42/unixcli/progname"
)

// Reporter formats diagnostic lines and writes each one with a single call
// to its writer.
type Reporter struct {
	mu   sync.Mutex
	out  io.Writer
	name func() string
	exit func(int)
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithName sets the function used to obtain the line prefix.
func WithName(name func() string) Option {
	return func(r *Reporter) {
		r.name = name
	}
}

// WithExit replaces the function used to end the process.
func WithExit(exit func(int)) Option {
	return func(r *Reporter) {
		r.exit = exit
	}
}

// New creates a Reporter that writes to w, prefixes lines with
// progname.Name and terminates with os.Exit unless told otherwise.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:  w,
		name: progname.Name,
		exit: os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var std = New(os.Stderr)

// Default returns the Reporter used by the package-level functions.
func Default() *Reporter {
	return std
}

// Warn prints the formatted message followed by a description of err.
// When err wraps an operating system error number, such as the one inside
// an *fs.PathError, only that number's description is printed. A nil err
// prints the message alone.
func (self *Reporter) Warn(err error, format string, args ...any) {
	self.write("", err, format, args)
}

// Warnx prints the formatted message.
func (self *Reporter) Warnx(format string, args ...any) {
	self.write("", nil, format, args)
}

// Warnp prints the formatted message with path before it.
func (self *Reporter) Warnp(path string, format string, args ...any) {
	self.write(path, nil, format, args)
}

// Err is Warn followed by termination with the given status.
func (self *Reporter) Err(code int, err error, format string, args ...any) {
	self.write("", err, format, args)
	self.terminate(code)
}

// Errx is Warnx followed by termination with the given status.
func (self *Reporter) Errx(code int, format string, args ...any) {
	self.write("", nil, format, args)
	self.terminate(code)
}

// Errp is Warnp followed by termination with the given status.
func (self *Reporter) Errp(code int, path string, format string, args ...any) {
	self.write(path, nil, format, args)
	self.terminate(code)
}

// write builds the complete line before taking the lock so that the
// writer only ever sees whole lines.
func (self *Reporter) write(path string, cause error, format string, args []any) {
	line := make([]byte, 0, 128)
	line = append(line, self.name()...)
	line = append(line, ": "...)
	if len(path) != 0 {
		line = append(line, path...)
		line = append(line, ": "...)
	}
	line = fmt.Appendf(line, format, args...)
	if cause != nil {
		line = append(line, ": "...)
		line = append(line, Describe(cause)...)
	}
	line = append(line, '\n')
	self.mu.Lock()
	// Nothing can be done about a failing error stream.
	_, _ = self.out.Write(line)
	self.mu.Unlock()
}

type syncer interface {
	Sync() error
}

func (self *Reporter) terminate(code int) {
	if s, ok := self.out.(syncer); ok {
		_ = s.Sync()
	}
	self.exit(exitStatus(code))
	panic("unreachable")
}

// Warn calls Warn on the default Reporter.
func Warn(err error, format string, args ...any) {
	std.Warn(err, format, args...)
}

// Warnx calls Warnx on the default Reporter.
func Warnx(format string, args ...any) {
	std.Warnx(format, args...)
}

// Warnp calls Warnp on the default Reporter.
func Warnp(path string, format string, args ...any) {
	std.Warnp(path, format, args...)
}

// Err calls Err on the default Reporter. It does not return.
func Err(code int, err error, format string, args ...any) {
	std.Err(code, err, format, args...)
}

// Errx calls Errx on the default Reporter. It does not return.
func Errx(code int, format string, args ...any) {
	std.Errx(code, format, args...)
}

// Errp calls Errp on the default Reporter. It does not return.
func Errp(code int, path string, format string, args ...any) {
	std.Errp(code, path, format, args...)
}
