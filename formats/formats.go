// Package formats implements the bidirectional syslog codec: parsing
// raw wire text into structured messages and generating wire text from
// message components, for both RFC 3164 (BSD) and RFC 5424.
//
// All functions are pure and stateless; they may be called concurrently
// without coordination.
package formats

import (
	"fmt"

	"slogforge/models"
)

const (
	RFC3164 = "3164"
	RFC5424 = "5424"
)

// FormatError reports input text that does not match the grammar of the
// declared RFC version, or a structurally valid token holding a
// semantically invalid value (bad month name, impossible calendar
// date).
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string {
	return e.msg
}

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{msg: fmt.Sprintf(format, args...)}
}

// Parse routes raw wire text to the parser for the given RFC version.
// Any version other than "5424" (including empty) selects RFC 3164.
func Parse(rfcVersion, raw string) (*models.ParsedMessage, error) {
	if rfcVersion == RFC5424 {
		return ParseRFC5424(raw)
	}

	return ParseRFC3164(raw)
}

// Generate routes message components to the generator for the given RFC
// version, with the same fallback as Parse. Generation never fails:
// every component has a default.
func Generate(rfcVersion string, c models.MessageComponents) string {
	if rfcVersion == RFC5424 {
		return GenerateRFC5424(c)
	}

	return GenerateRFC3164(c)
}
