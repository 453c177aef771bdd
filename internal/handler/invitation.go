// internal/handler/invitation.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/classloop/membership/internal/middleware"
	"github.com/classloop/membership/internal/model"
	"github.com/classloop/membership/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type InvitationHandler struct {
	invService *service.InvitationService
}

func NewInvitationHandler(invService *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invService: invService}
}

func requesterFrom(caller middleware.Caller) service.Requester {
	req := service.Requester{Email: caller.Email}
	if caller.UserID != "" {
		if id, err := uuid.Parse(caller.UserID); err == nil {
			req.UserID = &id
		}
	}
	return req
}

type ListInvitationsResponse struct {
	BaseResponse
	Invitations []*model.Invitation `json:"invitations"`
}

// ListInvitations handles GET /api/invitations?orgId=...
func (h *InvitationHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No resolvable caller identity")
		return
	}

	orgID, err := uuid.Parse(r.URL.Query().Get("orgId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid or missing orgId")
		return
	}

	invitations, err := h.invService.List(r.Context(), orgID, caller.Email)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	if invitations == nil {
		invitations = []*model.Invitation{}
	}

	respondWithJSON(w, http.StatusOK, ListInvitationsResponse{
		BaseResponse: BaseResponse{Ok: true},
		Invitations:  invitations,
	})
}

type RedeemRequest struct {
	InvitationCode string `json:"invitationCode"`
}

type RedeemResponse struct {
	BaseResponse
	Identity *model.Identity `json:"identity"`
	Message  string          `json:"message"`
}

// RedeemInvitation handles POST /api/invitations/redeem.
func (h *InvitationHandler) RedeemInvitation(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No resolvable caller identity")
		return
	}

	var req RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	identity, err := h.invService.Redeem(r.Context(), req.InvitationCode, requesterFrom(caller))
	if err != nil {
		slog.ErrorContext(r.Context(), "invitation redemption failed",
			"error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, RedeemResponse{
		BaseResponse: BaseResponse{Ok: true},
		Identity:     identity,
		Message:      "Invitation redeemed",
	})
}

type IssueRequest struct {
	RoleType   string        `json:"roleType"`
	RoleConfig model.JSONMap `json:"roleConfig"`
	ExpiresIn  string        `json:"expiresIn"`
	SendTo     string        `json:"sendTo"`
}

type IssueResponse struct {
	BaseResponse
	Invitation *model.Invitation `json:"invitation"`
}

// IssueInvitation handles POST /api/organizations/{id}/invitations.
func (h *InvitationHandler) IssueInvitation(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No resolvable caller identity")
		return
	}

	orgID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	var req IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	input := service.IssueInput{
		OrgID:      orgID,
		RoleType:   req.RoleType,
		RoleConfig: req.RoleConfig,
		SendTo:     req.SendTo,
	}
	if req.ExpiresIn != "" {
		d, err := time.ParseDuration(req.ExpiresIn)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid expiresIn duration")
			return
		}
		input.ExpiresIn = d
	}

	inv, err := h.invService.Issue(r.Context(), input, requesterFrom(caller))
	if err != nil {
		slog.ErrorContext(r.Context(), "invitation issuance failed",
			"error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, IssueResponse{
		BaseResponse: BaseResponse{Ok: true},
		Invitation:   inv,
	})
}
