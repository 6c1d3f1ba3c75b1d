// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/danielhkuo/gevs/ledger"
	"github.com/danielhkuo/gevs/middleware"
	"github.com/danielhkuo/gevs/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AccountHandler serves voter registration and login.
type AccountHandler struct {
	registry *ledger.VoterRegistry
}

func NewAccountHandler(db *sql.DB) *AccountHandler {
	return &AccountHandler{registry: ledger.NewVoterRegistry(db)}
}

// Register handles POST /gevs/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !middleware.ParseJSONBody(w, r, &req) {
		return
	}

	if !emailPattern.MatchString(req.Email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if req.Password == "" || req.FullName == "" || req.DOB == "" || req.UVC == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "all fields are required")
		return
	}
	if _, err := time.Parse("2006-01-02", req.DOB); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "dob must be an ISO date (YYYY-MM-DD)")
		return
	}

	voterID, err := h.registry.Register(req.Email, req.FullName, req.DOB, req.Password, req.UVC, req.ConstituencyID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrAlreadyRegistered):
			middleware.ErrorResponse(w, http.StatusConflict, "email already registered")
		case errors.Is(err, ledger.ErrInvalidCredential):
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid or already used UVC")
		case errors.Is(err, ledger.ErrConstituencyNotFound):
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown constituency")
		case ledger.IsStorageError(err):
			slog.Error("registration failed", "error", err)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		default:
			slog.Error("registration failed", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	slog.Info("voter registered", "voter_id", voterID)
	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		Status:  "success",
		VoterID: voterID,
	})
}

// Login handles POST /gevs/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !middleware.ParseJSONBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	role, err := h.registry.Authenticate(req.Email, req.Password)
	if err != nil {
		slog.Error("login failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	if role == models.RoleNone {
		middleware.JSONResponse(w, http.StatusUnauthorized, models.LoginResponse{Status: "failed"})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Status:  "success",
		Account: role,
	})
}
