//go:build unix

package report

import (
	"errors"
	"strconv"

	"golang.org/x/sys/unix"
)

// errnoText returns the strerror(3) text for an errno in the chain of err.
// Numbers the platform does not define are described as "unknown error N".
func errnoText(err error) (string, bool) {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return "", false
	}
	if errno == 0 {
		return "success", true
	}
	if unix.ErrnoName(errno) == "" {
		return "unknown error " + strconv.Itoa(int(errno)), true
	}
	return errno.Error(), true
}

// exitStatus keeps only the low byte, which is all a parent process can
// observe through wait(2).
func exitStatus(code int) int {
	return code & 0xff
}
