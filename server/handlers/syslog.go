// Package handlers implements the HTTP API around the syslog codec:
// parse/generate endpoints, example CRUD, and debug helpers. Handlers
// report codec and transport failures inside the JSON envelope; only
// malformed requests produce non-200 statuses.
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	syslogv4 "github.com/leodido/go-syslog/v4/rfc5424"

	"slogforge/formats"
	"slogforge/models"
	"slogforge/sender"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// defaults shared by the syslog endpoints, matching the request model.
func applyRequestDefaults(port *int, protocol *string) {
	if *port == 0 {
		*port = 514
	}
	if *protocol == "" {
		*protocol = "udp"
	}
}

// ParseSyslog parses a raw wire line and forwards it to the requested
// collector.
func ParseSyslog(w http.ResponseWriter, r *http.Request) {
	var req models.SyslogRequest
	if !decodeBody(w, r, &req) {
		return
	}
	applyRequestDefaults(&req.TargetPort, &req.Protocol)

	parsed, err := formats.Parse(req.RFCVersion, req.RawMessage)
	if err != nil {
		writeJSON(w, models.SyslogResponse{Success: false, Error: err.Error()})
		return
	}

	protocol := strings.ToLower(req.Protocol)
	if err := sender.Send(protocol, req.RawMessage, req.TargetServer, req.TargetPort); err != nil {
		writeJSON(w, models.SyslogResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, models.SyslogResponse{
		Success:       true,
		ParsedMessage: parsed,
		SentTo:        fmt.Sprintf("%s:%d (%s)", req.TargetServer, req.TargetPort, strings.ToUpper(protocol)),
	})
}

// ParseSyslogOnly parses a raw wire line without sending anything.
func ParseSyslogOnly(w http.ResponseWriter, r *http.Request) {
	var req models.SyslogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	parsed, err := formats.Parse(req.RFCVersion, req.RawMessage)
	if err != nil {
		writeJSON(w, models.SyslogResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, models.SyslogResponse{Success: true, ParsedMessage: parsed})
}

// GenerateSyslog generates wire text from components and forwards it to
// the requested collector.
func GenerateSyslog(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	applyRequestDefaults(&req.TargetPort, &req.Protocol)

	message := formats.Generate(req.Components.RFCVersion, req.Components)

	protocol := strings.ToLower(req.Protocol)
	if err := sender.Send(protocol, message, req.TargetServer, req.TargetPort); err != nil {
		writeJSON(w, models.SyslogResponse{Success: false, Error: err.Error(), GeneratedMessage: message})
		return
	}

	writeJSON(w, models.SyslogResponse{
		Success:          true,
		GeneratedMessage: message,
		SentTo:           fmt.Sprintf("%s:%d (%s)", req.TargetServer, req.TargetPort, strings.ToUpper(protocol)),
	})
}

// GenerateSyslogOnly generates wire text without sending anything.
func GenerateSyslogOnly(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	message := formats.Generate(req.Components.RFCVersion, req.Components)

	writeJSON(w, models.SyslogResponse{Success: true, GeneratedMessage: message})
}

// ValidateSyslog checks a wire line against the declared RFC version.
// For RFC 5424 the strict go-syslog machine gives a second opinion next
// to this codec's verdict.
func ValidateSyslog(w http.ResponseWriter, r *http.Request) {
	message := r.PathValue("message")
	rfcVersion := r.PathValue("rfc_version")

	resp := models.ValidateResponse{RFCVersion: rfcVersion}

	parsed, err := formats.Parse(rfcVersion, message)
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Valid = true
		resp.Parsed = parsed
	}

	if rfcVersion == formats.RFC5424 {
		_, strictErr := syslogv4.NewParser().Parse([]byte(message))
		strictValid := strictErr == nil
		resp.StrictValid = &strictValid
	}

	writeJSON(w, resp)
}
