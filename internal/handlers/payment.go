package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hollmovies-web-be/internal/payment"
)

type paymentStatus struct {
	Step payment.Step `json:"step"`
	Plan string       `json:"plan,omitempty"`
	VIP  bool         `json:"vip"`
}

func (h *Handler) status() paymentStatus {
	return paymentStatus{
		Step: h.Flow.Step(),
		Plan: h.Flow.SelectedPlan(),
		VIP:  h.App.IsVIP(),
	}
}

func (h *Handler) PaymentPlansHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, payment.Plans)
}

// PaymentOpenHandler starts a fresh wizard lifetime at plan selection.
func (h *Handler) PaymentOpenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.Flow.Open()
	writeJSON(w, http.StatusOK, h.status())
}

func (h *Handler) PaymentSelectHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Plan string `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Flow.SelectPlan(req.Plan); err != nil {
		h.paymentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.status())
}

func (h *Handler) PaymentBackHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.Flow.Back(); err != nil {
		h.paymentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.status())
}

// PaymentVerifyHandler submits the transaction reference. Verification runs
// for a fixed delay, so the response is 202; the frontend polls status.
func (h *Handler) PaymentVerifyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Reference string `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Flow.StartVerification(req.Reference); err != nil {
		h.paymentError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, h.status())
}

func (h *Handler) PaymentCloseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.Flow.Close()
	writeJSON(w, http.StatusOK, h.status())
}

func (h *Handler) PaymentStatusHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.status())
}

func (h *Handler) paymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payment.ErrEmptyReference), errors.Is(err, payment.ErrUnknownPlan):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, payment.ErrWrongStep):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "Payment error", http.StatusInternalServerError)
	}
}
