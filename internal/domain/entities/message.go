package entities

import "time"

// Note is a direct message ("recado") queued on the recipient's profile.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Sender    string    `json:"sender" yaml:"sender"`
	Recipient string    `json:"recipient" yaml:"recipient"`
	Text      string    `json:"text" yaml:"text"`
	System    bool      `json:"system,omitempty" yaml:"system,omitempty"` // generated by Jackut, not typed by Sender
	SentAt    time.Time `json:"sent_at" yaml:"sent_at"`
}

// Broadcast is a community message delivered to every member's queue.
type Broadcast struct {
	ID        string    `json:"id" yaml:"id"`
	Sender    string    `json:"sender" yaml:"sender"`
	Community string    `json:"community" yaml:"community"`
	Text      string    `json:"text" yaml:"text"`
	SentAt    time.Time `json:"sent_at" yaml:"sent_at"`
}
