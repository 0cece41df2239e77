package logger

import (
	"errors"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message string
}

// collectErrorEntries walks the error chain from the outermost error inwards.
// zerr errors contribute their own message and continue to their cause; the
// first standard error contributes its full text and ends the walk.
// Joined errors contribute each of their branches in order.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	for current := err; current != nil; {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(e)...)
			}
			break
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entries = append(entries, ErrorEntry{Message: m.Message()})
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as
//
//	Error: <first>
//
//	  Caused by:
//	    → <second>
//	    → <third>
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		parts := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			// Align continuation lines with the text after "Error: "
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}
