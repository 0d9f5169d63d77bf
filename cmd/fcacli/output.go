package main

import (
	"bytes"
	"io"

	"github.com/natefinch/atomic"
)

// writeOutput sends data to stdout when path is empty, or atomically
// replaces the file at path otherwise, so a crash mid-write never leaves a
// truncated report behind.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := io.Copy(stdout, bytes.NewReader(data))

		return err
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}
