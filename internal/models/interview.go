package models

import "time"

// Interview is a write-once history row. Stage transitions append one when
// they carry a note or a performer; scored rows feed the ranking.
type Interview struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	ApplicationID   int       `gorm:"not null;index" json:"applicationId"`
	InterviewStepID int       `gorm:"not null" json:"interviewStepId"`
	EmployeeID      *int      `json:"employeeId"`
	InterviewDate   time.Time `gorm:"not null" json:"interviewDate"`
	Notes           *string   `gorm:"type:text" json:"notes"`
	Score           *float64  `json:"score"`

	// Relations
	InterviewStep InterviewStep `gorm:"foreignKey:InterviewStepID" json:"-"`
}

func (Interview) TableName() string {
	return "interviews"
}
