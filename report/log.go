package report

import (
	"log"
	"os"

	"github.com/JaMo42/unixcli/progname"
)

// SetupLog makes the standard logger produce lines in the same format as
// Warnx, for code that still reports through log.Printf.
func SetupLog() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	log.SetPrefix(progname.Name() + ": ")
}
