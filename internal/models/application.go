package models

import "time"

// Application ties a candidate to a position. CurrentInterviewStep is the
// only field mutated after creation.
type Application struct {
	ID                   int       `gorm:"primaryKey" json:"id"`
	CandidateID          int       `gorm:"not null;index" json:"candidateId"`
	PositionID           int       `gorm:"not null;index" json:"positionId"`
	CurrentInterviewStep int       `gorm:"not null;index" json:"currentInterviewStep"`
	ApplicationDate      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"applicationDate"`
	CreatedAt            time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`

	// Relations
	Candidate   Candidate     `gorm:"foreignKey:CandidateID" json:"-"`
	Position    Position      `gorm:"foreignKey:PositionID" json:"-"`
	CurrentStep InterviewStep `gorm:"foreignKey:CurrentInterviewStep" json:"-"`
	Interviews  []Interview   `gorm:"foreignKey:ApplicationID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
