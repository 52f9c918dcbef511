package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func ratingPtr(n int16) *int16 { return &n }
func boolPtr(b bool) *bool { return &b }

func validSubmission() Submission {
	return Submission{
		RespondentName:      strPtr("Julian"),
		OverallSatisfaction: ratingPtr(5),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Submission)
		wantErr error
	}{
		{
			name:   "minimal valid submission",
			mutate: func(s *Submission) {},
		},
		{
			name: "fully rated submission",
			mutate: func(s *Submission) {
				s.Department = strPtr("Logistics")
				s.ContractManagementRating = ratingPtr(4)
				s.SalesOrderRating = ratingPtr(3)
				s.FulfillmentRating = ratingPtr(5)
				s.ExcelUploadRating = ratingPtr(1)
				s.ApprovalFlowRating = ratingPtr(2)
				s.UIIntuitiveness = ratingPtr(4)
				s.NavigationEase = ratingPtr(4)
				s.LoadingSpeed = ratingPtr(3)
				s.TimeSaved = boolPtr(true)
				s.OtherComments = strPtr("keep it up")
			},
		},
		{
			name:    "missing respondent name",
			mutate:  func(s *Submission) { s.RespondentName = nil },
			wantErr: ErrMissingRespondentName,
		},
		{
			name:    "blank respondent name",
			mutate:  func(s *Submission) { s.RespondentName = strPtr("   ") },
			wantErr: ErrMissingRespondentName,
		},
		{
			name:    "missing overall satisfaction",
			mutate:  func(s *Submission) { s.OverallSatisfaction = nil },
			wantErr: ErrMissingOverallSatisfaction,
		},
		{
			name:    "zero overall satisfaction",
			mutate:  func(s *Submission) { s.OverallSatisfaction = ratingPtr(0) },
			wantErr: ErrMissingOverallSatisfaction,
		},
		{
			name:    "overall satisfaction above range",
			mutate:  func(s *Submission) { s.OverallSatisfaction = ratingPtr(6) },
			wantErr: ErrMissingOverallSatisfaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)

			err := Validate(s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOptionalRatingRange(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Submission)
	}{
		{"contract_management_rating", func(s *Submission) { s.ContractManagementRating = ratingPtr(6) }},
		{"excel_upload_rating", func(s *Submission) { s.ExcelUploadRating = ratingPtr(0) }},
		{"ui_intuitiveness", func(s *Submission) { s.UIIntuitiveness = ratingPtr(9) }},
		{"loading_speed", func(s *Submission) { s.LoadingSpeed = ratingPtr(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)

			err := Validate(s)
			var rangeErr *RatingRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.field, rangeErr.Field)
		})
	}
}

func TestRecordTrimsRespondentName(t *testing.T) {
	s := validSubmission()
	s.RespondentName = strPtr("  Julian  ")
	s.TimeSaved = boolPtr(false)

	record := s.Record()

	require.NotNil(t, record.RespondentName)
	assert.Equal(t, "Julian", *record.RespondentName)

	// false must survive conversion as answered-no, not become unanswered
	require.NotNil(t, record.TimeSaved)
	assert.False(t, *record.TimeSaved)

	assert.Nil(t, record.Department)
	assert.Nil(t, record.ContractManagementRating)
}
