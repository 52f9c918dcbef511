package main

import (
	"errors"
	"net/http"
	"strconv"

	"pulse/internal/mailer"
	"pulse/internal/stats"
	"pulse/internal/store"
	"pulse/internal/survey"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// submitFeedbackHandler godoc
//
//	@Summary		Submit feedback
//	@Description	Accepts one survey submission after validating it.
//	@Tags			Feedbacks
//	@Accept			json
//	@Produce		json
//	@Param			feedback	body		survey.Submission	true	"Survey submission"
//	@Success		201			{object}	store.Feedback		"Stored feedback"
//	@Failure		400			{object}	error				"Invalid submission"
//	@Failure		500			{object}	error				"Internal Server Error"
//	@Router			/feedbacks [post]
func (app *application) submitFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var submission survey.Submission
	if err := readJSON(w, r, &submission); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := survey.Validate(submission); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	feedback := submission.Record()

	if err := app.store.Feedbacks.Create(r.Context(), feedback); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.notifyAdmin(feedback)

	writeJSON(w, http.StatusCreated, map[string]any{
		"data":    feedback,
		"message": "feedback submitted successfully",
	})
}

// listFeedbacksHandler godoc
//
//	@Summary		List feedback
//	@Description	Returns one page of submissions, newest first.
//	@Tags			Feedbacks
//	@Produce		json
//	@Param			page	query		int	false	"Page number (1-indexed)"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{array}		store.Feedback	"Page of feedback"
//	@Failure		401		{object}	error			"unauthorized route"
//	@Failure		500		{object}	error			"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/feedbacks [get]
func (app *application) listFeedbacksHandler(w http.ResponseWriter, r *http.Request) {
	page, limit := listParams(r)

	feedbacks, pagination, err := app.store.Feedbacks.List(r.Context(), page, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":       feedbacks,
		"pagination": pagination,
	})
}

// feedbackSummaryHandler godoc
//
//	@Summary		Summarize one page of feedback
//	@Description	Average satisfaction and time-saved rate over the requested page.
//	@Tags			Feedbacks
//	@Produce		json
//	@Param			page	query		int	false	"Page number (1-indexed)"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{object}	stats.Summary
//	@Failure		401		{object}	error	"unauthorized route"
//	@Failure		500		{object}	error	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/feedbacks/summary [get]
func (app *application) feedbackSummaryHandler(w http.ResponseWriter, r *http.Request) {
	page, limit := listParams(r)

	feedbacks, pagination, err := app.store.Feedbacks.List(r.Context(), page, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, stats.Summarize(feedbacks, pagination.Total))
}

// deleteFeedbackHandler godoc
//
//	@Summary		Delete feedback
//	@Description	Permanently removes one submission by id.
//	@Tags			Feedbacks
//	@Produce		json
//	@Param			id	query		string	true	"Feedback id"
//	@Success		200	{object}	string	"feedback deleted"
//	@Failure		400	{object}	error	"id is missing or malformed"
//	@Failure		404	{object}	error	"no such feedback"
//	@Failure		500	{object}	error	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/feedbacks [delete]
func (app *application) deleteFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		app.badRequestResponse(w, r, errors.New("id query parameter is required"))
		return
	}

	id, err := uuid.Parse(idParam)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid feedback ID"))
		return
	}

	if err := app.store.Feedbacks.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "feedback deleted"})
}

// notifyAdmin mails the configured admin about a new submission. Delivery is
// fire-and-forget: failures are logged and never affect the response.
func (app *application) notifyAdmin(feedback *store.Feedback) {
	if app.mailer == nil || app.config.mail.notifyEmail == "" {
		return
	}

	name := "Anonymous"
	if feedback.RespondentName != nil {
		name = *feedback.RespondentName
	}
	rating := 0
	if feedback.OverallSatisfaction != nil {
		rating = int(*feedback.OverallSatisfaction)
	}

	go func() {
		data := struct {
			RespondentName      string
			OverallSatisfaction int
		}{
			RespondentName:      name,
			OverallSatisfaction: rating,
		}

		if _, err := app.mailer.Send(mailer.FeedbackReceivedTemplate, app.config.mail.notifyEmail, data); err != nil {
			app.logger.Errorw("failed to send feedback notification", "error", err.Error())
		}
	}()
}

// listParams reads page/limit with their defaults. Garbage or non-positive
// values fall back to the defaults rather than erroring.
func listParams(r *http.Request) (page, limit int) {
	page = defaultPage
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 1 {
		page = v
	}

	limit = defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 1 {
		limit = v
	}

	return page, limit
}
