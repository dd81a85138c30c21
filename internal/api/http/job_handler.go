package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"samedayramps-backend/internal/service"
)

type JobHandler struct {
	jobs service.JobService
}

func NewJobHandler(jobs service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		QuoteID                   string    `json:"quoteId"`
		ScheduledInstallationDate time.Time `json:"scheduledInstallationDate"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	job, err := h.jobs.CreateJobFromQuote(r.Context(), body.QuoteID, body.ScheduledInstallationDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.ListJobs(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobs.GetJob(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ScheduledInstallationDate time.Time `json:"scheduledInstallationDate"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	job, err := h.jobs.RescheduleJob(r.Context(), mux.Vars(r)["id"], body.ScheduledInstallationDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ActualInstallationDate *time.Time `json:"actualInstallationDate"`
	}
	// The body is optional; an empty one means "completed just now".
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeBody(r, &body); err != nil {
			respondError(w, err)
			return
		}
	}

	job, err := h.jobs.CompleteJob(r.Context(), mux.Vars(r)["id"], body.ActualInstallationDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobs.CancelJob(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.jobs.DeleteJob(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
