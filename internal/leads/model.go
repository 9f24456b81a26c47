// Package leads stores franchise enquiry leads and serves the dashboard
// that the franchise team works from.
package leads

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Status is a lead's position in the sales pipeline.
type Status string

const (
	StatusNew           Status = "new"
	StatusForwarded     Status = "forwarded"
	StatusContacted     Status = "contacted"
	StatusInDiscussion  Status = "in_discussion"
	StatusConverted     Status = "converted"
	StatusNotInterested Status = "not_interested"
)

// ValidStatus reports whether s is a known pipeline status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusForwarded, StatusContacted, StatusInDiscussion,
		StatusConverted, StatusNotInterested:
		return true
	}
	return false
}

// Note kinds distinguish operator notes from system-recorded events.
const (
	NoteKindNote   = "note"
	NoteKindSystem = "system"
	NoteKindError  = "error"
)

// Note is one append-only annotation on a lead.
type Note struct {
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
	Kind      string    `json:"kind"`
}

// Lead is one franchise enquiry captured from WhatsApp.
type Lead struct {
	ID              string     `json:"id"`
	Phone           string     `json:"phone"`
	ProfileName     string     `json:"profile_name,omitempty"`
	Name            string     `json:"name"`
	Location        string     `json:"location"`
	Email           string     `json:"email"`
	Details         string     `json:"details,omitempty"`
	EnquiryType     string     `json:"enquiry_type"`
	Status          Status     `json:"status"`
	RegionalAdvisor string     `json:"regional_advisor,omitempty"`
	AdvisorNumber   string     `json:"advisor_number,omitempty"`
	Notes           []Note     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ForwardedAt     *time.Time `json:"forwarded_at,omitempty"`
}

// CreateLeadRequest carries the fields collected by the conversation flow.
type CreateLeadRequest struct {
	Phone       string `json:"phone"`
	ProfileName string `json:"profile_name"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	Details     string `json:"details"`
	EnquiryType string `json:"enquiry_type"`
}

// Validate checks the request before storage. Email is optional because the
// flow lets users skip it.
func (r *CreateLeadRequest) Validate() error {
	if strings.TrimSpace(r.Phone) == "" {
		return ErrMissingPhone
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(r.Location) == "" {
		return ErrMissingLocation
	}
	return nil
}

// NewLeadID builds a sortable lead identifier from the creation time plus a
// short random suffix to break same-millisecond ties.
func NewLeadID(at time.Time) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		// The nanosecond remainder still breaks ties within a millisecond.
		return fmt.Sprintf("LEAD-%d-%06x", at.UnixMilli(), at.Nanosecond()%0xffffff)
	}
	return fmt.Sprintf("LEAD-%d-%s", at.UnixMilli(), hex.EncodeToString(suffix))
}
