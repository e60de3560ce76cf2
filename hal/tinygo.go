//go:build tinygo

package hal

import "machine"

// NewLogger returns a logger writing to the default serial port.
func NewLogger() Logger {
	return serialLogger{}
}

type serialLogger struct{}

func (serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\n')
}

func (serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		machine.Serial.WriteByte(b[i])
	}
	machine.Serial.WriteByte('\n')
}
