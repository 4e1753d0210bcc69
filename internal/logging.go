package internal

import (
	"log"
	"os"
)

// InitLogging sends the standard logger to stdout with microsecond timestamps
// and an optional component prefix.
func InitLogging(prefix string) {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lmsgprefix)
	if prefix != "" {
		log.SetPrefix(prefix + ": ")
	}
}
