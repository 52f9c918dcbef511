package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pulse/internal/auth"
	"pulse/internal/ratelimiter"
	"pulse/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAdminPassword = "letmein"
	testSessionSecret = "test-session-secret"
	testCronSecret    = "test-cron-secret"
)

// mockFeedbackStore keeps records in memory, newest appended last, and serves
// them back the way the real store does: created_at descending.
type mockFeedbackStore struct {
	feedbacks []store.Feedback

	createErr error
	listErr   error
	deleteErr error
	countErr  error

	tableStats *store.TableStats
}

func (m *mockFeedbackStore) Create(_ context.Context, feedback *store.Feedback) error {
	if m.createErr != nil {
		return m.createErr
	}
	feedback.ID = uuid.New()
	feedback.CreatedAt = time.Now().Add(time.Duration(len(m.feedbacks)) * time.Millisecond)
	m.feedbacks = append(m.feedbacks, *feedback)
	return nil
}

func (m *mockFeedbackStore) List(_ context.Context, page, limit int) ([]store.Feedback, store.Pagination, error) {
	if m.listErr != nil {
		return nil, store.Pagination{}, m.listErr
	}

	newestFirst := make([]store.Feedback, 0, len(m.feedbacks))
	for i := len(m.feedbacks) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, m.feedbacks[i])
	}

	start := (page - 1) * limit
	items := []store.Feedback{}
	if start < len(newestFirst) {
		end := start + limit
		if end > len(newestFirst) {
			end = len(newestFirst)
		}
		items = newestFirst[start:end]
	}

	return items, store.NewPagination(page, limit, int64(len(m.feedbacks))), nil
}

func (m *mockFeedbackStore) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, f := range m.feedbacks {
		if f.ID == id {
			m.feedbacks = append(m.feedbacks[:i], m.feedbacks[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *mockFeedbackStore) Count(_ context.Context) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.feedbacks)), nil
}

func (m *mockFeedbackStore) Stats(_ context.Context) (*store.TableStats, error) {
	return m.tableStats, nil
}

func newTestApplication(t *testing.T, feedbacks *mockFeedbackStore) *application {
	t.Helper()

	return &application{
		config: config{
			env: "test",
			auth: authConfig{
				admin: adminConfig{
					password:      testAdminPassword,
					sessionSecret: testSessionSecret,
					sessionExp:    time.Hour,
					iss:           "pulse",
				},
			},
			cron:        cronConfig{secret: testCronSecret},
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		store:         store.Storage{Feedbacks: feedbacks},
		logger:        zap.NewNop().Sugar(),
		authenticator: auth.NewJWTAuthenticator(testSessionSecret, "pulse", "pulse"),
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(200, 5*time.Second),
	}
}

func adminToken(t *testing.T, app *application) string {
	t.Helper()

	token, _, err := app.authenticator.GenerateSessionToken(time.Hour)
	require.NoError(t, err)
	return token
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}
