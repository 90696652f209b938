package formats

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"slogforge/models"
)

var (
	// Example: <34>1 2003-10-11T22:14:15.003Z mymachine su - ID47 - 'su root' failed
	// STRUCTURED-DATA is either the NILVALUE "-" or one or more
	// bracketed elements; MESSAGE is the free-form remainder and may be
	// absent entirely.
	rfc5424Pattern = regexp.MustCompile(`^<(?P<pri>\d+)>(?P<ver>\d+)\s+(?P<ts>\S+)\s+(?P<host>\S+)\s+(?P<app>\S+)\s+(?P<proc>\S+)\s+(?P<msgid>\S+)\s+(?P<sd>-|\[.*?\](?:\[.*?\])*)\s*(?P<msg>.*)$`)
)

// ParseRFC5424 parses a structured-syslog line of the shape
//
//	<P>VERSION TIMESTAMP HOSTNAME APP-NAME PROC-ID MSG-ID STRUCTURED-DATA MESSAGE
//
// into a ParsedMessage. The timestamp is carried through verbatim (it
// is already machine-readable, unlike RFC 3164), and each nilable
// header field decodes "-" to nil. The whole line must match; there is
// no partial recovery.
func ParseRFC5424(raw string) (*models.ParsedMessage, error) {
	m := rfc5424Pattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, formatErrorf("Invalid RFC 5424 syslog format")
	}

	groups := make(map[string]string)
	for i, name := range rfc5424Pattern.SubexpNames() {
		if i != 0 && name != "" {
			groups[name] = m[i]
		}
	}

	priority, err := strconv.Atoi(groups["pri"])
	if err != nil {
		return nil, formatErrorf("invalid priority %q: %v", groups["pri"], err)
	}
	facility, severity := DecodePriority(priority)

	version, err := strconv.Atoi(groups["ver"])
	if err != nil {
		return nil, formatErrorf("invalid version %q: %v", groups["ver"], err)
	}

	return &models.ParsedMessage{
		RFCVersion:     RFC5424,
		Priority:       priority,
		Facility:       facility,
		Severity:       severity,
		Version:        version,
		Timestamp:      groups["ts"],
		Hostname:       groups["host"],
		AppName:        nilIfDash(groups["app"]),
		PID:            nilIfDash(groups["proc"]),
		MsgID:          nilIfDash(groups["msgid"]),
		StructuredData: nilIfDash(groups["sd"]),
		Message:        groups["msg"],
	}, nil
}

// nilIfDash maps the RFC 5424 NILVALUE to an absent field.
func nilIfDash(s string) *string {
	if s == "-" {
		return nil
	}
	return &s
}

// GenerateRFC5424 renders message components as a structured-syslog
// line, version always 1:
//
//	<priority>1 TIMESTAMP HOSTNAME APP-NAME PROC-ID MSG-ID STRUCTURED-DATA MESSAGE
//
// Absent header fields render as the NILVALUE "-".
func GenerateRFC5424(c models.MessageComponents) string {
	priority := resolvePriority(c)

	timestamp := c.Timestamp
	if timestamp == "" {
		timestamp = rfc5424Timestamp(time.Now())
	}

	hostname := c.Hostname
	if hostname == "" {
		hostname = "localhost"
	}

	return fmt.Sprintf("<%d>1 %s %s %s %s %s %s %s",
		priority,
		timestamp,
		hostname,
		dashIfEmpty(c.AppName),
		dashIfEmpty(c.ProcID),
		dashIfEmpty(c.MsgID),
		dashIfEmpty(c.StructuredData),
		c.Message,
	)
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// rfc5424Timestamp renders the local time as ISO 8601 with a literal
// "Z" appended. The suffix does not convert to UTC; the mislabelled
// local time is kept as-is because downstream consumers match on the
// exact shape.
func rfc5424Timestamp(now time.Time) string {
	return now.Format("2006-01-02T15:04:05.000000") + "Z"
}
