package models

import "time"

// ReportCard is the after-session summary sent home with a client.
type ReportCard struct {
	ID           string    `bson:"id" json:"id"`
	ClientID     string    `bson:"clientId" json:"clientId"`
	SessionDate  string    `bson:"sessionDate" json:"sessionDate"` // e.g. "2026-08-28"
	Summary      string    `bson:"summary" json:"summary"`
	SkillsWorked []string  `bson:"skillsWorked,omitempty" json:"skillsWorked,omitempty"`
	Homework     string    `bson:"homework,omitempty" json:"homework,omitempty"`
	PhotoURL     string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateReportCardRequest is the payload for writing a new report card.
type CreateReportCardRequest struct {
	ClientID     string   `json:"clientId" binding:"required"`
	SessionDate  string   `json:"sessionDate" binding:"required"`
	Summary      string   `json:"summary" binding:"required"`
	SkillsWorked []string `json:"skillsWorked,omitempty"`
	Homework     string   `json:"homework,omitempty"`
}
