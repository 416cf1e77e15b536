package entities

import "time"

// Session is an authenticated login kept active between calls.
type Session struct {
	ID       string    `json:"id" yaml:"id"`
	Login    string    `json:"login" yaml:"login"`
	OpenedAt time.Time `json:"opened_at" yaml:"opened_at"`
}

// Snapshot is the full persisted state of a Jackut instance.
type Snapshot struct {
	Users       []*User      `json:"users" yaml:"users"`
	Communities []*Community `json:"communities" yaml:"communities"`
	Sessions    []Session    `json:"sessions,omitempty" yaml:"sessions,omitempty"`
}
