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
	// Example: <34>Oct 11 22:14:15 mymachine su[123]: 'su root' failed
	rfc3164Pattern = regexp.MustCompile(`^<(?P<pri>\d+)>(?P<ts>[A-Za-z]{3}\s+\d{1,2}\s+\d{2}:\d{2}:\d{2})\s+(?P<host>\S+)\s+(?P<tag>[^:\[\s]+)(?:\[(?P<pid>[^\]]+)\])?:\s*(?P<msg>.*)$`)

	// RFC 3164 carries English month abbreviations only, case-sensitive.
	rfc3164Months = map[string]time.Month{
		"Jan": time.January, "Feb": time.February, "Mar": time.March,
		"Apr": time.April, "May": time.May, "Jun": time.June,
		"Jul": time.July, "Aug": time.August, "Sep": time.September,
		"Oct": time.October, "Nov": time.November, "Dec": time.December,
	}
)

// ParseRFC3164 parses a BSD-syslog line of the shape
//
//	<P>Mon DD HH:MM:SS HOSTNAME TAG[PID]: MESSAGE
//
// into a ParsedMessage. The timestamp is normalized to ISO 8601 using
// the current year (the wire form carries none). The whole line must
// match; there is no partial recovery.
func ParseRFC3164(raw string) (*models.ParsedMessage, error) {
	m := rfc3164Pattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, formatErrorf("Invalid RFC 3164 syslog format")
	}

	groups := make(map[string]string)
	for i, name := range rfc3164Pattern.SubexpNames() {
		if i != 0 && name != "" {
			groups[name] = m[i]
		}
	}

	priority, err := strconv.Atoi(groups["pri"])
	if err != nil {
		return nil, formatErrorf("invalid priority %q: %v", groups["pri"], err)
	}
	facility, severity := DecodePriority(priority)

	timestamp, err := parseRFC3164Timestamp(groups["ts"])
	if err != nil {
		return nil, err
	}

	var pid *string
	if groups["pid"] != "" {
		v := groups["pid"]
		pid = &v
	}

	return &models.ParsedMessage{
		RFCVersion: RFC3164,
		Priority:   priority,
		Facility:   facility,
		Severity:   severity,
		Timestamp:  timestamp,
		Hostname:   groups["host"],
		Tag:        groups["tag"],
		PID:        pid,
		Message:    groups["msg"],
	}, nil
}

// parseRFC3164Timestamp converts "Mon DD HH:MM:SS" to an ISO 8601
// string in the current year. The month lookup and the calendar check
// both fail with a FormatError.
func parseRFC3164Timestamp(ts string) (string, error) {
	parts := strings.Fields(ts)
	if len(parts) != 3 {
		return "", formatErrorf("invalid timestamp format: %q", ts)
	}

	month, ok := rfc3164Months[parts[0]]
	if !ok {
		return "", formatErrorf("invalid month: %s", parts[0])
	}

	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", formatErrorf("invalid day: %s", parts[1])
	}

	clock := strings.Split(parts[2], ":")
	if len(clock) != 3 {
		return "", formatErrorf("invalid time: %s", parts[2])
	}

	hour, err1 := strconv.Atoi(clock[0])
	minute, err2 := strconv.Atoi(clock[1])
	second, err3 := strconv.Atoi(clock[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", formatErrorf("invalid time: %s", parts[2])
	}

	// time.Date normalizes out-of-range components (day 32 rolls into
	// the next month), so compare back to reject impossible dates.
	dt := time.Date(time.Now().Year(), month, day, hour, minute, second, 0, time.Local)
	if dt.Month() != month || dt.Day() != day ||
		dt.Hour() != hour || dt.Minute() != minute || dt.Second() != second {
		return "", formatErrorf("invalid timestamp format: %q", ts)
	}

	return dt.Format("2006-01-02T15:04:05"), nil
}

// GenerateRFC3164 renders message components as a BSD-syslog line:
//
//	<priority>TIMESTAMP HOSTNAME TAG[PID]: MESSAGE
//
// Missing components are defaulted (priority 34, current time,
// "localhost", "app"); nothing is validated or rejected.
func GenerateRFC3164(c models.MessageComponents) string {
	priority := resolvePriority(c)

	timestamp := c.Timestamp
	if timestamp == "" {
		timestamp = rfc3164Timestamp(time.Now())
	}

	hostname := c.Hostname
	if hostname == "" {
		hostname = "localhost"
	}

	tag := c.Tag
	if tag == "" {
		tag = "app"
	}

	pidPart := ""
	if c.PID != nil {
		pidPart = fmt.Sprintf("[%d]", *c.PID)
	}

	return fmt.Sprintf("<%d>%s %s %s%s: %s", priority, timestamp, hostname, tag, pidPart, c.Message)
}

// rfc3164Timestamp renders "Mon DD HH:MM:SS" with the day space-padded
// to width 2 ("Jan  1 12:30:45").
func rfc3164Timestamp(now time.Time) string {
	return fmt.Sprintf("%s %2d %s", now.Format("Jan"), now.Day(), now.Format("15:04:05"))
}
