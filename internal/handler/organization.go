// internal/handler/organization.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/classloop/membership/internal/middleware"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type OrganizationHandler struct {
	orgService *service.OrganizationService
}

func NewOrganizationHandler(orgService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

type CreateOrganizationResponse struct {
	BaseResponse
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Slug   string          `json:"slug"`
	Status model.OrgStatus `json:"status"`
}

// CreateOrganization handles POST /api/organizations.
func (h *OrganizationHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	// The creating user can come from the body or from the session.
	if caller, ok := middleware.CallerFromContext(r.Context()); ok {
		if input.UserEmail == "" {
			input.UserEmail = caller.Email
		}
		if input.CreatedBy == "" {
			input.CreatedBy = caller.Email
		}
	}

	org, outcomes, err := h.orgService.CreateWithOwner(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "organization creation failed",
			"error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	if failed := outcomes.Failed(); len(failed) > 0 {
		slog.WarnContext(r.Context(), "organization created with degraded mirrors",
			"org_id", org.ID, "failed_ops", len(failed), "requestID", chmw.GetReqID(r.Context()))
	}

	respondWithJSON(w, http.StatusCreated, CreateOrganizationResponse{
		BaseResponse: BaseResponse{Ok: true},
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		Status:       org.Status,
	})
}

// GetOrganization handles GET /api/organizations/{id}.
func (h *OrganizationHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	org, err := h.orgService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}
