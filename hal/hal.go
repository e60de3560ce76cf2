// Package hal isolates platform output behind a small interface so the same
// tasks run on the host and on tinygo targets.
package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}
