package models

import "time"

const (
	AnswerYes   = "yes"
	AnswerNo    = "no"
	AnswerMaybe = "maybe"
)

// AttendanceResponse is one participant's answer set for an adjustment menu.
// Answers maps slot id to yes/no/maybe.
type AttendanceResponse struct {
	ID              int            `json:"id"`
	MenuID          int            `json:"menu_id"`
	ParticipantName string         `json:"participant_name"`
	Email           string         `json:"email,omitempty"`
	Comment         string         `json:"comment,omitempty"`
	Answers         map[int]string `json:"answers"`
	CreatedAt       time.Time      `json:"created_at"`
}

// NewResponse is an incoming answer set before it is stored. Submitting again
// under the same name replaces the earlier set.
type NewResponse struct {
	ParticipantName string
	Email           string
	Comment         string
	Answers         map[int]string
}

// SlotTally is the derived per-slot aggregate over all responses. Available
// counts participants answering yes or maybe.
type SlotTally struct {
	SlotID    int       `json:"slot_id"`
	StartTime time.Time `json:"start_time"`
	Yes       int       `json:"yes"`
	No        int       `json:"no"`
	Maybe     int       `json:"maybe"`
	Available int       `json:"available"`
}
