package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveStageRequest_Validate(t *testing.T) {
	performer := 42
	negative := -1

	tests := []struct {
		name    string
		req     MoveStageRequest
		wantErr bool
	}{
		{"minimal", MoveStageRequest{ApplicationID: 5, NewStepID: 123}, false},
		{"with performer", MoveStageRequest{ApplicationID: 5, NewStepID: 123, PerformedBy: &performer}, false},
		{"missing application", MoveStageRequest{NewStepID: 123}, true},
		{"missing step", MoveStageRequest{ApplicationID: 5}, true},
		{"negative step", MoveStageRequest{ApplicationID: 5, NewStepID: -2}, true},
		{"negative performer", MoveStageRequest{ApplicationID: 5, NewStepID: 123, PerformedBy: &negative}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCandidate_FullName(t *testing.T) {
	c := Candidate{FirstName: "Alice", LastName: "Example"}
	assert.Equal(t, "Alice Example", c.FullName())
}
