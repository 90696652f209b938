package models

// MessageComponents is the generic input to message generation. One
// structure covers both RFC versions; fields that only apply to one
// format are ignored by the other generator. Optional numeric fields are
// pointers so that an omitted field is distinguishable from zero.
type MessageComponents struct {
	RFCVersion string `json:"rfc_version"` // "3164" or "5424"

	Priority *int `json:"priority,omitempty"`
	Facility *int `json:"facility,omitempty"`
	Severity *int `json:"severity,omitempty"`

	Timestamp string `json:"timestamp,omitempty"`
	Hostname  string `json:"hostname,omitempty"`

	// RFC 3164 specific
	Tag string `json:"tag,omitempty"`
	PID *int   `json:"pid,omitempty"`

	// RFC 5424 specific
	AppName        string `json:"app_name,omitempty"`
	ProcID         string `json:"proc_id,omitempty"`
	MsgID          string `json:"msg_id,omitempty"`
	StructuredData string `json:"structured_data,omitempty"`

	Message string `json:"message,omitempty"`
}

// ParsedMessage is the result of parsing one syslog line. Facility and
// severity are always derived from the priority. For RFC 5424 the
// nilable header fields (app name, proc id, msg id, structured data) are
// nil when the wire form carried the "-" NILVALUE; for RFC 3164 the PID
// is nil when no bracket group was present.
type ParsedMessage struct {
	RFCVersion string `json:"rfc_version"`

	Priority int `json:"priority"`
	Facility int `json:"facility"`
	Severity int `json:"severity"`

	Timestamp string `json:"timestamp"`
	Hostname  string `json:"hostname"`

	// RFC 3164 specific
	Tag string `json:"tag,omitempty"`

	// PID carries the RFC 3164 bracket text, or the RFC 5424 PROC-ID.
	// Not validated as numeric; relays put non-digit text in here.
	PID *string `json:"pid,omitempty"`

	// RFC 5424 specific
	Version        int     `json:"version,omitempty"`
	AppName        *string `json:"app_name,omitempty"`
	MsgID          *string `json:"msg_id,omitempty"`
	StructuredData *string `json:"structured_data,omitempty"`

	Message string `json:"message"`
}

// SyslogRequest is the body of the parse endpoints: a raw wire line plus
// the collector to forward it to.
type SyslogRequest struct {
	RawMessage   string `json:"raw_message"`
	TargetServer string `json:"target_server"`
	TargetPort   int    `json:"target_port"`
	Protocol     string `json:"protocol"`
	RFCVersion   string `json:"rfc_version"`
}

// GenerateRequest is the body of the generate endpoints.
type GenerateRequest struct {
	Components   MessageComponents `json:"components"`
	TargetServer string            `json:"target_server"`
	TargetPort   int               `json:"target_port"`
	Protocol     string            `json:"protocol"`
}

// SyslogResponse is the common envelope for the syslog endpoints.
type SyslogResponse struct {
	Success          bool           `json:"success"`
	ParsedMessage    *ParsedMessage `json:"parsed_message,omitempty"`
	GeneratedMessage string         `json:"generated_message,omitempty"`
	SentTo           string         `json:"sent_to,omitempty"`
	Error            string         `json:"error,omitempty"`
}

// ValidateResponse is returned by the validate endpoint.
type ValidateResponse struct {
	Valid      bool           `json:"valid"`
	Parsed     *ParsedMessage `json:"parsed,omitempty"`
	RFCVersion string         `json:"rfc_version"`
	// StrictValid reports whether the strict go-syslog RFC 5424 machine
	// also accepts the message. Only set for rfc_version "5424".
	StrictValid *bool  `json:"strict_valid,omitempty"`
	Error       string `json:"error,omitempty"`
}
