package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Feedback is one survey submission. Every nullable column is a pointer so
// that "not answered" stays distinct from zero/false, both in SQL and in JSON.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RespondentName *string `json:"respondent_name"`
	Department     *string `json:"department"`

	OverallSatisfaction *int16 `json:"overall_satisfaction"`

	// Feature-area ratings, 1-5
	ContractManagementRating *int16 `json:"contract_management_rating"`
	SalesOrderRating         *int16 `json:"sales_order_rating"`
	FulfillmentRating        *int16 `json:"fulfillment_rating"`
	ExcelUploadRating        *int16 `json:"excel_upload_rating"`
	ApprovalFlowRating       *int16 `json:"approval_flow_rating"`

	// UI/UX ratings, 1-5
	UIIntuitiveness *int16 `json:"ui_intuitiveness"`
	NavigationEase  *int16 `json:"navigation_ease"`
	LoadingSpeed    *int16 `json:"loading_speed"`

	WorkflowImprovement *string `json:"workflow_improvement"`
	TimeSaved           *bool   `json:"time_saved"`

	ConfusingTerms         *string `json:"confusing_terms"`
	MostUsefulFeature      *string `json:"most_useful_feature"`
	MostDifficultFeature   *string `json:"most_difficult_feature"`
	ImprovementSuggestions *string `json:"improvement_suggestions"`
	AdditionalFeatures     *string `json:"additional_features"`
	OtherComments          *string `json:"other_comments"`
}

// Pagination describes one page of a listing. Total is always the full table
// count, independent of the requested page.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TableStats are aggregates over the whole feedbacks table, computed by the
// database rather than over a fetched page.
type TableStats struct {
	TotalResponses    int64    `json:"total_responses"`
	AvgSatisfaction   *float64 `json:"avg_satisfaction"`
	TimeSavedYes      int64    `json:"time_saved_yes"`
	TimeSavedAnswered int64    `json:"time_saved_answered"`
	TimeSavedRate     int      `json:"time_saved_rate"`
}

type FeedbackStore struct {
	db *pgxpool.Pool
}

const feedbackColumns = `id, created_at, respondent_name, department,
		overall_satisfaction, contract_management_rating, sales_order_rating,
		fulfillment_rating, excel_upload_rating, approval_flow_rating,
		ui_intuitiveness, navigation_ease, loading_speed,
		workflow_improvement, time_saved, confusing_terms, most_useful_feature,
		most_difficult_feature, improvement_suggestions, additional_features,
		other_comments`

// Create inserts exactly one feedback record. The database assigns id and
// created_at; both are scanned back into the passed record. There is no
// idempotency guarantee: a retried call inserts a second, independent row.
func (s *FeedbackStore) Create(ctx context.Context, feedback *Feedback) error {
	query := `
        INSERT INTO feedbacks (
            respondent_name, department, overall_satisfaction,
            contract_management_rating, sales_order_rating, fulfillment_rating,
            excel_upload_rating, approval_flow_rating,
            ui_intuitiveness, navigation_ease, loading_speed,
            workflow_improvement, time_saved, confusing_terms,
            most_useful_feature, most_difficult_feature,
            improvement_suggestions, additional_features, other_comments
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
        RETURNING id, created_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRow(ctx, query,
		feedback.RespondentName,
		feedback.Department,
		feedback.OverallSatisfaction,
		feedback.ContractManagementRating,
		feedback.SalesOrderRating,
		feedback.FulfillmentRating,
		feedback.ExcelUploadRating,
		feedback.ApprovalFlowRating,
		feedback.UIIntuitiveness,
		feedback.NavigationEase,
		feedback.LoadingSpeed,
		feedback.WorkflowImprovement,
		feedback.TimeSaved,
		feedback.ConfusingTerms,
		feedback.MostUsefulFeature,
		feedback.MostDifficultFeature,
		feedback.ImprovementSuggestions,
		feedback.AdditionalFeatures,
		feedback.OtherComments,
	).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

// List returns one page of feedbacks ordered by created_at descending, newest
// first. page is 1-indexed; a page past the end yields an empty slice, not an
// error.
func (s *FeedbackStore) List(ctx context.Context, page, limit int) ([]Feedback, Pagination, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	total, err := s.count(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}

	offset := (page - 1) * limit

	query := `
        SELECT ` + feedbackColumns + `
        FROM feedbacks
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `

	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to query feedbacks: %w", err)
	}
	defer rows.Close()

	feedbacks := []Feedback{}
	for rows.Next() {
		var f Feedback
		if err := scanFeedback(rows, &f); err != nil {
			return nil, Pagination{}, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		feedbacks = append(feedbacks, f)
	}
	if err := rows.Err(); err != nil {
		return nil, Pagination{}, err
	}

	return feedbacks, NewPagination(page, limit, total), nil
}

// Delete permanently removes one record. Deleting an id that does not exist
// returns ErrNotFound.
func (s *FeedbackStore) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the full table count.
func (s *FeedbackStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.count(ctx)
}

func (s *FeedbackStore) count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM feedbacks`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count feedbacks: %w", err)
	}
	return total, nil
}

// Stats computes whole-table aggregates in a single query, so dashboard
// numbers do not drift with the page being viewed.
func (s *FeedbackStore) Stats(ctx context.Context) (*TableStats, error) {
	query := `
        SELECT
            COUNT(*),
            AVG(overall_satisfaction)::float8,
            COUNT(*) FILTER (WHERE time_saved),
            COUNT(time_saved)
        FROM feedbacks
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var stats TableStats
	err := s.db.QueryRow(ctx, query).Scan(
		&stats.TotalResponses,
		&stats.AvgSatisfaction,
		&stats.TimeSavedYes,
		&stats.TimeSavedAnswered,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate feedbacks: %w", err)
	}

	if stats.AvgSatisfaction != nil {
		rounded := math.Round(*stats.AvgSatisfaction*10) / 10
		stats.AvgSatisfaction = &rounded
	}
	if stats.TimeSavedAnswered > 0 {
		stats.TimeSavedRate = int(math.Round(float64(stats.TimeSavedYes) / float64(stats.TimeSavedAnswered) * 100))
	}

	return &stats, nil
}

// NewPagination fills in the derived totalPages for one listing page.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

type feedbackRow interface {
	Scan(dest ...any) error
}

func scanFeedback(row feedbackRow, f *Feedback) error {
	return row.Scan(
		&f.ID,
		&f.CreatedAt,
		&f.RespondentName,
		&f.Department,
		&f.OverallSatisfaction,
		&f.ContractManagementRating,
		&f.SalesOrderRating,
		&f.FulfillmentRating,
		&f.ExcelUploadRating,
		&f.ApprovalFlowRating,
		&f.UIIntuitiveness,
		&f.NavigationEase,
		&f.LoadingSpeed,
		&f.WorkflowImprovement,
		&f.TimeSaved,
		&f.ConfusingTerms,
		&f.MostUsefulFeature,
		&f.MostDifficultFeature,
		&f.ImprovementSuggestions,
		&f.AdditionalFeatures,
		&f.OtherComments,
	)
}
