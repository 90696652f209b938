package handlers

import (
	"net/http"

	"slogforge/formats"
	"slogforge/utils"
)

// Info describes the API: endpoints, supported RFC versions and example
// wire lines.
func Info(w http.ResponseWriter, r *http.Request) {
	version := utils.Version
	if version == "" {
		version = "2.0.0"
	}

	writeJSON(w, map[string]any{
		"title":       "RFC 3164/5424 Syslog Parser API",
		"version":     version,
		"description": "Parse and send RFC 3164/5424 syslog messages",
		"endpoints": map[string]string{
			"POST /api/syslog/parse":                           "Parse and send syslog message (raw)",
			"POST /api/syslog/parse-only":                      "Parse syslog message only (raw)",
			"POST /api/syslog/generate":                        "Generate and send syslog message (from components)",
			"POST /api/syslog/generate-only":                   "Generate syslog message only (from components)",
			"GET /api/syslog/validate/{message}/{rfc_version}": "Validate RFC format",
			"POST /api/test/test-server/{port}":                "Start test syslog server",
		},
		"rfc_versions": []string{formats.RFC3164, formats.RFC5424},
		"example_messages": map[string]string{
			"rfc3164": "<34>Oct 11 22:14:15 mymachine su: 'su root' failed for lonvick on /dev/pts/8",
			"rfc5424": "<34>1 2003-10-11T22:14:15.003Z mymachine su - ID47 - 'su root' failed for lonvick on /dev/pts/8",
		},
	})
}
