package models

import (
	"time"
)

// CustomExample is a stored example syslog message: a named raw wire
// line tagged with the RFC version it conforms to.
type CustomExample struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	RFCVersion  string    `json:"rfc_version"`
	RawMessage  string    `json:"raw_message"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateExampleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RFCVersion  string `json:"rfc_version"`
	RawMessage  string `json:"raw_message"`
}

// UpdateExampleRequest carries a partial update; nil fields are left
// unchanged.
type UpdateExampleRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	RFCVersion  *string `json:"rfc_version,omitempty"`
	RawMessage  *string `json:"raw_message,omitempty"`
}

// ExampleResponse is the common envelope for the examples endpoints.
type ExampleResponse struct {
	Success  bool            `json:"success"`
	Example  *CustomExample  `json:"example,omitempty"`
	Examples []CustomExample `json:"examples,omitempty"`
	Error    string          `json:"error,omitempty"`
}
