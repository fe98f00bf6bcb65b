package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type JobHandler struct {
	jobs repository.JobRepository
	v    *validator.Validate
}

func NewJobHandler(jobs repository.JobRepository) *JobHandler {
	return &JobHandler{
		jobs: jobs,
		v:    validator.New(),
	}
}

// @Tags Jobs
// @Summary Create a job posting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.JobRequest true "Job details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/register/job [post]
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized.")
		return
	}

	var req models.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if req.Vacancies == 0 {
		req.Vacancies = 1
	}

	job := &models.Job{
		UserID:             user.ID,
		CompanyName:        req.CompanyName,
		CompanyLocation:    req.CompanyLocation,
		CompanyPhoneNumber: req.CompanyPhoneNumber,
		JobTitle:           req.JobTitle,
		Education:          req.Education,
		Country:            req.Country,
		JobType:            req.JobType,
		Salary:             req.Salary,
		Vacancies:          req.Vacancies,
		Experiences:        req.Experiences,
		Skills:             req.Skills,
		JobDescription:     req.JobDescription,
		JobLocation:        req.JobLocation,
	}

	if err := h.jobs.Create(r.Context(), job); err != nil {
		log.Println("Error creating job:", err)
		writeJSONError(w, http.StatusInternalServerError, "create_job_failed", "Internal Server Error.")
		return
	}

	writeJSONMessage(w, http.StatusCreated, "Job created successfully.")
}

// @Tags Jobs
// @Summary Get job details
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.Job
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/job/details/{id} [get]
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid job id.")
		return
	}

	job, err := h.jobs.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "job_not_found", "Job not found.")
			return
		}
		log.Println("Error fetching job:", err)
		writeJSONError(w, http.StatusInternalServerError, "get_job_failed", "Internal Server Error.")
		return
	}

	// The owner id is hidden by the model's json tags.
	writeJSON(w, http.StatusOK, job)
}

// @Tags Jobs
// @Summary Edit an owned job posting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param body body models.JobRequest true "New job details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/job/edit/{id} [put]
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	job, ok := middleware.JobFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "update_job_failed", "Internal Server Error.")
		return
	}

	var req models.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if req.Vacancies == 0 {
		req.Vacancies = 1
	}

	if err := h.jobs.Update(r.Context(), job.ID, &req); err != nil {
		log.Println("Error updating job:", err)
		writeJSONError(w, http.StatusInternalServerError, "update_job_failed", "Internal Server Error.")
		return
	}

	writeJSONMessage(w, http.StatusOK, "Job updated successfully.")
}

// @Tags Jobs
// @Summary Delete an owned job posting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/job/delete/{id} [delete]
func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	job, ok := middleware.JobFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "delete_job_failed", "Internal Server Error.")
		return
	}

	if err := h.jobs.Delete(r.Context(), job.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "job_not_found", "Job not found.")
			return
		}
		log.Println("Error deleting job:", err)
		writeJSONError(w, http.StatusInternalServerError, "delete_job_failed", "Internal Server Error.")
		return
	}

	writeJSONMessage(w, http.StatusOK, "Job deleted successfully.")
}

// @Tags Jobs
// @Summary List jobs for seekers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.ListJobsRequest false "Pagination and filters"
// @Success 200 {object} models.ListJobsResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/job/seeker/list [post]
func (h *JobHandler) SeekerList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, nil)
}

// @Tags Jobs
// @Summary List the caller's own job postings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.ListJobsRequest false "Pagination and filters"
// @Success 200 {object} models.ListJobsResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/job/recruiter/list [post]
func (h *JobHandler) RecruiterList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized.")
		return
	}
	h.list(w, r, &user.ID)
}

// list is the shared listing path; a non-nil owner scopes the match to
// that recruiter's postings.
func (h *JobHandler) list(w http.ResponseWriter, r *http.Request, owner *bson.ObjectID) {
	var req models.ListJobsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if req.Page == 0 {
		req.Page = defaultPage
	}
	if req.Limit == 0 {
		req.Limit = defaultLimit
	}

	filter := repository.JobFilter{
		Page:       req.Page,
		Limit:      req.Limit,
		SearchText: req.SearchText,
		JobTitle:   req.JobTitle,
		Owner:      owner,
	}

	jobs, total, err := h.jobs.List(r.Context(), filter)
	if err != nil {
		log.Println("Error listing jobs:", err)
		writeJSONError(w, http.StatusInternalServerError, "list_jobs_failed", "Internal Server Error.")
		return
	}
	if jobs == nil {
		jobs = []models.JobSummary{}
	}

	writeJSON(w, http.StatusOK, models.ListJobsResponse{
		Message:   "success",
		Jobs:      jobs,
		PageCount: repository.PageCount(total, req.Limit),
	})
}
