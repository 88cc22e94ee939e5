package cff

import "log"

// logWarnf is the default diagnostic writer. No example in the reference
// corpus pulls in a structured logging library for a narrow parsing
// package like this one; the stdlib logger matches what the wider corpus
// does when it logs at all.
func logWarnf(format string, args ...interface{}) {
	log.Printf("cff: "+format, args...)
}
