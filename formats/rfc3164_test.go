package formats

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"slogforge/models"
)

func TestParseRFC3164_Valid(t *testing.T) {
	parsed, err := ParseRFC3164("<34>Oct 11 22:14:15 mymachine su: 'su root' failed for lonvick on /dev/pts/8")
	require.NoError(t, err)

	require.Equal(t, RFC3164, parsed.RFCVersion)
	require.Equal(t, 34, parsed.Priority)
	require.Equal(t, 4, parsed.Facility)
	require.Equal(t, 2, parsed.Severity)
	require.Equal(t, "mymachine", parsed.Hostname)
	require.Equal(t, "su", parsed.Tag)
	require.Nil(t, parsed.PID)
	require.Equal(t, "'su root' failed for lonvick on /dev/pts/8", parsed.Message)

	expectedTS := fmt.Sprintf("%d-10-11T22:14:15", time.Now().Year())
	require.Equal(t, expectedTS, parsed.Timestamp)
}

func TestParseRFC3164_WithPID(t *testing.T) {
	parsed, err := ParseRFC3164("<13>Feb  5 17:32:18 10.0.0.99 myapp[2710]: Use the BFG!")
	require.NoError(t, err)

	require.Equal(t, 13, parsed.Priority)
	require.Equal(t, 1, parsed.Facility)
	require.Equal(t, 5, parsed.Severity)
	require.Equal(t, "10.0.0.99", parsed.Hostname)
	require.Equal(t, "myapp", parsed.Tag)
	require.NotNil(t, parsed.PID)
	require.Equal(t, "2710", *parsed.PID)
	require.Equal(t, "Use the BFG!", parsed.Message)
}

func TestParseRFC3164_NonNumericPID(t *testing.T) {
	// Relays put non-digit text between the brackets; it is carried
	// through, not rejected.
	parsed, err := ParseRFC3164("<34>Oct 11 22:14:15 host tag[worker-1]: hello")
	require.NoError(t, err)
	require.NotNil(t, parsed.PID)
	require.Equal(t, "worker-1", *parsed.PID)
}

func TestParseRFC3164_EmptyMessage(t *testing.T) {
	parsed, err := ParseRFC3164("<34>Oct 11 22:14:15 host tag: ")
	require.NoError(t, err)
	require.Equal(t, "", parsed.Message)
}

func TestParseRFC3164_MessageWithColons(t *testing.T) {
	parsed, err := ParseRFC3164("<34>Oct 11 22:14:15 host tag: error: disk: full")
	require.NoError(t, err)
	require.Equal(t, "error: disk: full", parsed.Message)
}

func TestParseRFC3164_TrimsWhitespace(t *testing.T) {
	parsed, err := ParseRFC3164("  <34>Oct 11 22:14:15 host tag: msg \n")
	require.NoError(t, err)
	require.Equal(t, "host", parsed.Hostname)
}

func TestParseRFC3164_Invalid(t *testing.T) {
	testCases := []struct {
		description string
		input       string
	}{
		{"not syslog at all", "not a syslog message"},
		{"empty input", ""},
		{"missing priority", "Oct 11 22:14:15 host tag: msg"},
		{"missing colon after tag", "<34>Oct 11 22:14:15 host tag msg"},
		{"invalid month", "<34>Xyz 11 22:14:15 host tag: msg"},
		{"lowercase month", "<34>oct 11 22:14:15 host tag: msg"},
		{"day 32", "<34>Oct 32 22:14:15 host tag: msg"},
		{"hour 25", "<34>Oct 11 25:14:15 host tag: msg"},
		{"minute 60", "<34>Oct 11 22:60:15 host tag: msg"},
		{"rfc5424 line", "<34>1 2003-10-11T22:14:15.003Z mymachine su - ID47 - msg"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			parsed, err := ParseRFC3164(tc.input)
			require.Error(t, err)
			require.Nil(t, parsed)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestGenerateRFC3164_Explicit(t *testing.T) {
	facility, severity := 16, 6
	out := GenerateRFC3164(models.MessageComponents{
		RFCVersion: RFC3164,
		Facility:   &facility,
		Severity:   &severity,
		Hostname:   "h",
		Tag:        "t",
		Message:    "m",
	})

	require.True(t, strings.HasPrefix(out, "<134>"))
	require.True(t, strings.HasSuffix(out, " h t: m"))
}

func TestGenerateRFC3164_FixedTimestamp(t *testing.T) {
	pid := 123
	out := GenerateRFC3164(models.MessageComponents{
		RFCVersion: RFC3164,
		Timestamp:  "Oct 11 22:14:15",
		Hostname:   "mymachine",
		Tag:        "su",
		PID:        &pid,
		Message:    "'su root' failed",
	})

	require.Equal(t, "<34>Oct 11 22:14:15 mymachine su[123]: 'su root' failed", out)
}

func TestGenerateRFC3164_Defaults(t *testing.T) {
	out := GenerateRFC3164(models.MessageComponents{RFCVersion: RFC3164})

	// <34>Mon DD HH:MM:SS localhost app:
	shape := regexp.MustCompile(`^<34>[A-Z][a-z]{2} [ \d]\d \d{2}:\d{2}:\d{2} localhost app: $`)
	require.Regexp(t, shape, out)
}

func TestGenerateRFC3164_DaySpacePadded(t *testing.T) {
	ts := rfc3164Timestamp(time.Date(2023, time.January, 1, 12, 30, 45, 0, time.Local))
	require.Equal(t, "Jan  1 12:30:45", ts)

	ts = rfc3164Timestamp(time.Date(2023, time.December, 25, 1, 2, 3, 0, time.Local))
	require.Equal(t, "Dec 25 01:02:03", ts)
}

func TestRFC3164_RoundTrip(t *testing.T) {
	priority, pid := 134, 4321
	original := models.MessageComponents{
		RFCVersion: RFC3164,
		Priority:   &priority,
		Timestamp:  "Oct 11 22:14:15",
		Hostname:   "roundtrip-host",
		Tag:        "demo",
		PID:        &pid,
		Message:    "payload with spaces: and colons",
	}

	parsed, err := ParseRFC3164(GenerateRFC3164(original))
	require.NoError(t, err)
	require.Equal(t, 134, parsed.Priority)
	require.Equal(t, 16, parsed.Facility)
	require.Equal(t, 6, parsed.Severity)

	// Map the parsed fields back into components and generate again.
	require.NotNil(t, parsed.PID)
	parsedPID, err := strconv.Atoi(*parsed.PID)
	require.NoError(t, err)

	regenerated := GenerateRFC3164(models.MessageComponents{
		RFCVersion: RFC3164,
		Priority:   &parsed.Priority,
		Timestamp:  "Oct 11 22:14:15",
		Hostname:   parsed.Hostname,
		Tag:        parsed.Tag,
		PID:        &parsedPID,
		Message:    parsed.Message,
	})

	require.Equal(t, GenerateRFC3164(original), regenerated)
}
