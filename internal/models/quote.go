// Package models defines GORM data models for the quote relay.
package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectType classifies what the requester wants built.
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
	ProjectTypeCustom      ProjectType = "custom"
	// ProjectTypeUnspecified is the empty selection; the field is optional.
	ProjectTypeUnspecified ProjectType = ""
)

// ProjectTypes lists the selectable values in display order.
var ProjectTypes = []ProjectType{ProjectTypeResidential, ProjectTypeCommercial, ProjectTypeCustom}

// Valid reports whether t is a known type or unspecified.
func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeUnspecified, ProjectTypeResidential, ProjectTypeCommercial, ProjectTypeCustom:
		return true
	}
	return false
}

// Label is the human-readable name shown in forms and emails.
func (t ProjectType) Label() string {
	switch t {
	case ProjectTypeResidential:
		return "Residential"
	case ProjectTypeCommercial:
		return "Commercial"
	case ProjectTypeCustom:
		return "Custom"
	}
	return "Not specified"
}

// QuoteRequest is one inquiry received by the relay, kept for staff follow-up.
// PublicID is the identifier returned to the site; the numeric ID never leaves
// the database.
type QuoteRequest struct {
	gorm.Model

	PublicID string `gorm:"uniqueIndex;not null" json:"id"`

	// Requester
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"index;not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`

	ProjectType ProjectType `json:"project_type"`
	Message     string      `gorm:"type:text;not null" json:"message"`

	// Origin metadata
	RemoteAddr string `json:"remote_addr"`
	UserAgent  string `json:"user_agent"`

	// Delivery
	Notified    bool   `gorm:"index;default:false" json:"notified"`
	NotifyError string `json:"notify_error,omitempty"`

	// Follow-up
	Acknowledged   bool       `gorm:"index;default:false" json:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	ReceivedAt     time.Time  `gorm:"index" json:"received_at"`
}
