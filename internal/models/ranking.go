package models

// ISOTimeLayout renders instants the way JavaScript's toISOString does.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z"

type CandidateRankEntry struct {
	ApplicationID        int      `json:"applicationId"`
	CandidateID          int      `json:"candidateId"`
	FullName             string   `json:"fullName"`
	CurrentInterviewStep int      `json:"currentInterviewStep"`
	AverageScore         *float64 `json:"averageScore"`
	LastInterviewDate    *string  `json:"lastInterviewDate"`
}
