// Package listener implements the optional debug collector: UDP and TCP
// listeners that receive syslog traffic, run it through the codec and
// log what arrived. Useful when pointing the sender at this process to
// inspect generated messages.
package listener

import (
	"fmt"
	"log"

	"github.com/leodido/go-syslog/v4/rfc5424"

	"slogforge/formats"
	"slogforge/models"
)

// describe flattens a parsed message into a one-line summary for the
// debug log.
func describe(p *models.ParsedMessage) string {
	appOrTag := p.Tag
	if p.AppName != nil {
		appOrTag = *p.AppName
	}

	return fmt.Sprintf("rfc%s facility=%d severity=%d host=%s app=%s msg=%s",
		p.RFCVersion, p.Facility, p.Severity, p.Hostname, appOrTag, p.Message)
}

// handleSyslogLine decodes one received line: the local dispatch layer
// first (3164, then 5424), go-syslog's best-effort 5424 machine as a
// last resort. Returns a summary of what was understood and whether any
// decoder accepted the line.
func handleSyslogLine(line string) (string, bool) {
	if parsed, err := formats.Parse(formats.RFC3164, line); err == nil {
		return describe(parsed), true
	}

	if parsed, err := formats.Parse(formats.RFC5424, line); err == nil {
		return describe(parsed), true
	}

	bestEffort := rfc5424.NewParser(rfc5424.WithBestEffort())
	if msg, err := bestEffort.Parse([]byte(line)); err == nil && msg != nil {
		if m, ok := msg.(*rfc5424.SyslogMessage); ok && m.Message != nil {
			return "rfc5424 (best effort) msg=" + *m.Message, true
		}
	}

	return "", false
}

// logReceived records one received line the way the debug server prints
// them, summary included when a decoder accepted it.
func logReceived(protocol, client, line string) {
	summary, ok := handleSyslogLine(line)
	if ok {
		log.Printf("%s from %s: %s\n  -> %s", protocol, client, line, summary)
	} else {
		log.Printf("%s from %s (unparsed): %s", protocol, client, line)
	}
}
