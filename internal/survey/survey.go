// Package survey holds the submission shape of the satisfaction survey and
// the acceptance rules applied before anything reaches storage.
package survey

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pulse/internal/store"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingRespondentName      = errors.New("respondent_name is required")
	ErrMissingOverallSatisfaction = errors.New("overall_satisfaction must be a rating between 1 and 5")
)

// RatingRangeError reports an optional rating outside 1-5.
type RatingRangeError struct {
	Field string
}

func (e *RatingRangeError) Error() string {
	return fmt.Sprintf("%s must be a rating between 1 and 5", e.Field)
}

// Departments is the option list offered on the survey form. Stored values
// are not restricted to it: older records may carry values that have since
// been removed from the list.
var Departments = []string{
	"Sales",
	"Logistics",
	"Marketing",
	"Finance",
	"Merchandising",
	"IT",
	"Management Support",
	"Other",
}

// FeatureLabels maps feature-area rating fields to their display names.
var FeatureLabels = map[string]string{
	"contract_management_rating": "Supply contract management",
	"sales_order_rating":         "Sales order management",
	"fulfillment_rating":         "Fulfillment and release management",
	"excel_upload_rating":        "Excel order sheet upload",
	"approval_flow_rating":       "Approval process",
}

// UXLabels maps the UI/UX rating fields to their display names.
var UXLabels = map[string]string{
	"ui_intuitiveness": "Screen intuitiveness",
	"navigation_ease":  "Ease of finding menus",
	"loading_speed":    "Loading speed",
}

// Submission is a candidate feedback record as received from the form,
// i.e. a Feedback minus the backend-generated id and created_at.
type Submission struct {
	RespondentName *string `json:"respondent_name" validate:"required,notblank"`
	Department     *string `json:"department"`

	OverallSatisfaction *int16 `json:"overall_satisfaction" validate:"required,min=1,max=5"`

	ContractManagementRating *int16 `json:"contract_management_rating" validate:"omitnil,min=1,max=5"`
	SalesOrderRating         *int16 `json:"sales_order_rating" validate:"omitnil,min=1,max=5"`
	FulfillmentRating        *int16 `json:"fulfillment_rating" validate:"omitnil,min=1,max=5"`
	ExcelUploadRating        *int16 `json:"excel_upload_rating" validate:"omitnil,min=1,max=5"`
	ApprovalFlowRating       *int16 `json:"approval_flow_rating" validate:"omitnil,min=1,max=5"`

	UIIntuitiveness *int16 `json:"ui_intuitiveness" validate:"omitnil,min=1,max=5"`
	NavigationEase  *int16 `json:"navigation_ease" validate:"omitnil,min=1,max=5"`
	LoadingSpeed    *int16 `json:"loading_speed" validate:"omitnil,min=1,max=5"`

	WorkflowImprovement *string `json:"workflow_improvement"`
	TimeSaved           *bool   `json:"time_saved"`

	ConfusingTerms         *string `json:"confusing_terms"`
	MostUsefulFeature      *string `json:"most_useful_feature"`
	MostDifficultFeature   *string `json:"most_difficult_feature"`
	ImprovementSuggestions *string `json:"improvement_suggestions"`
	AdditionalFeatures     *string `json:"additional_features"`
	OtherComments          *string `json:"other_comments"`
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report field names by their json tag so validation errors match the
	// wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate applies the acceptance rules: respondent_name non-empty after
// trimming, overall_satisfaction present and within 1-5, every optional
// rating within 1-5 when given. Pure function; the first failing rule wins.
func Validate(s Submission) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "respondent_name":
		return ErrMissingRespondentName
	case "overall_satisfaction":
		return ErrMissingOverallSatisfaction
	default:
		return &RatingRangeError{Field: fe.Field()}
	}
}

// Record converts an accepted submission into a storable feedback record.
// The respondent name is trimmed; everything else passes through untouched.
func (s Submission) Record() *store.Feedback {
	name := s.RespondentName
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		name = &trimmed
	}

	return &store.Feedback{
		RespondentName:           name,
		Department:               s.Department,
		OverallSatisfaction:      s.OverallSatisfaction,
		ContractManagementRating: s.ContractManagementRating,
		SalesOrderRating:         s.SalesOrderRating,
		FulfillmentRating:        s.FulfillmentRating,
		ExcelUploadRating:        s.ExcelUploadRating,
		ApprovalFlowRating:       s.ApprovalFlowRating,
		UIIntuitiveness:          s.UIIntuitiveness,
		NavigationEase:           s.NavigationEase,
		LoadingSpeed:             s.LoadingSpeed,
		WorkflowImprovement:      s.WorkflowImprovement,
		TimeSaved:                s.TimeSaved,
		ConfusingTerms:           s.ConfusingTerms,
		MostUsefulFeature:        s.MostUsefulFeature,
		MostDifficultFeature:     s.MostDifficultFeature,
		ImprovementSuggestions:   s.ImprovementSuggestions,
		AdditionalFeatures:       s.AdditionalFeatures,
		OtherComments:            s.OtherComments,
	}
}
