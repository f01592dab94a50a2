//go:generate mockgen -source ./handlers.go -destination=./mocks/handlers.go -package=mock_web
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/warrantyguard/claim-portal/internal/client"
	"github.com/warrantyguard/claim-portal/internal/lifecycle"
	"github.com/warrantyguard/claim-portal/internal/metrics"
	"github.com/warrantyguard/claim-portal/internal/model"
	"github.com/warrantyguard/claim-portal/internal/probe"
	"github.com/warrantyguard/claim-portal/internal/service"
)

type ClaimService interface {
	Submit(ctx context.Context, imei, issue string) (*model.Claim, error)
	Lookup(ctx context.Context, id model.ClaimID) (*model.Claim, error)
	Perform(ctx context.Context, id model.ClaimID, action string) (*model.Claim, error)
}

type BackendStatus interface {
	Last() probe.Snapshot
}

type Handler struct {
	claims  ClaimService
	backend BackendStatus
	log     *zap.Logger
	views   *renderer
}

func NewHandler(claims ClaimService, backend BackendStatus, log *zap.Logger) (*Handler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	views, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Handler{claims: claims, backend: backend, log: log, views: views}, nil
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, pageHome, HomePage(h.backend.Last()))
}

func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, pageSubmit, SubmitPage("", "", nil))
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.page(w, r, http.StatusBadRequest, pageSubmit, SubmitPage("", "", errMissingFields))
		return
	}

	imei := strings.TrimSpace(r.PostFormValue("product_imei"))
	issue := strings.TrimSpace(r.PostFormValue("issue_description"))
	if imei == "" || issue == "" {
		h.page(w, r, http.StatusBadRequest, pageSubmit, SubmitPage(imei, issue, errMissingFields))
		return
	}

	claim, err := h.claims.Submit(r.Context(), imei, issue)
	if err != nil {
		h.log.Warn("submit claim failed", zap.Error(err))
		h.page(w, r, statusFor(err), pageSubmit, SubmitPage(imei, issue, err))
		return
	}

	metrics.ClaimsSubmittedTotal.Inc()
	h.log.Info("claim submitted",
		zap.String("claim_id", claim.ID.String()),
		zap.String("customer_id", claim.CustomerID),
		zap.String("status", string(claim.Status)),
	)

	http.Redirect(w, r, trackPath(claim.ID), http.StatusSeeOther)
}

func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("id"))
	if query == "" {
		h.page(w, r, http.StatusOK, pageTrack, TrackPage("", nil, nil))
		return
	}

	claim, err := h.claims.Lookup(r.Context(), model.ClaimID(query))
	if err != nil {
		h.log.Info("track lookup failed", zap.String("claim_id", query), zap.Error(err))
	}
	h.page(w, r, statusFor(err), pageTrack, TrackPage(query, claim, err))
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("id"))
	if query == "" {
		h.page(w, r, http.StatusOK, pageDashboard, DashboardPage("", nil, nil, nil))
		return
	}

	claim, err := h.claims.Lookup(r.Context(), model.ClaimID(query))
	if err != nil {
		h.log.Info("dashboard lookup failed", zap.String("claim_id", query), zap.Error(err))
	}
	h.page(w, r, statusFor(err), pageDashboard, DashboardPage(query, claim, err, nil))
}

func (h *Handler) PerformAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.ClaimID(vars["id"])
	action := vars["action"]

	claim, err := h.claims.Perform(r.Context(), id, action)
	if err == nil {
		v := DashboardPage(id.String(), claim, nil, nil)
		v.Sent = sentNotice(action, "done.")
		h.page(w, r, http.StatusOK, pageDashboard, v)
		return
	}

	if errors.Is(err, service.ErrRefetch) {
		h.log.Warn("claim reload after action failed",
			zap.String("claim_id", id.String()),
			zap.String("action", action),
			zap.Error(err),
		)
		v := DashboardPage(id.String(), nil, err, nil)
		v.Sent = sentNotice(action, "sent.")
		h.page(w, r, statusFor(err), pageDashboard, v)
		return
	}

	if errors.Is(err, client.ErrNotFound) {
		h.page(w, r, http.StatusNotFound, pageDashboard, DashboardPage(id.String(), nil, err, nil))
		return
	}

	// Show the claim as it stands now, if it can still be read.
	current, lookupErr := h.claims.Lookup(r.Context(), id)
	if lookupErr != nil {
		current = nil
	}
	h.page(w, r, statusFor(err), pageDashboard, DashboardPage(id.String(), current, nil, err))
}

func sentNotice(action, outcome string) *Notice {
	a, ok := lifecycle.ByName(action)
	if !ok {
		return nil
	}
	return &Notice{Kind: NoticeInfo, Text: a.Label + ": " + outcome}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	last := h.backend.Last()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"backend_up": last.Up,
	})
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := h.views.render(w, status, page, data); err != nil {
		h.log.Error("render page", zap.String("page", page), zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func statusFor(err error) int {
	switch {
	case err == nil, errors.Is(err, service.ErrRefetch):
		return http.StatusOK
	case errors.Is(err, errMissingFields), errors.Is(err, service.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, client.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrActionUnavailable), errors.Is(err, service.ErrInFlight):
		return http.StatusConflict
	case errors.Is(err, client.ErrNetwork):
		return http.StatusBadGateway
	case errors.Is(err, client.ErrAction), errors.Is(err, client.ErrServer):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
