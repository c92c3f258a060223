// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"gigfin/internal/middleware"
	"gigfin/internal/session"
	"gigfin/internal/store"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		sessions:  sessions,
		userStore: userStore,
	}
}

// Login validates credentials and creates a session. The response tells
// the client whether the user still has to set up or verify 2FA.
//
// POST /admin/login {"email": ..., "password": ...}
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.userStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	// Create a session. TwoFADone starts as false — user must complete 2FA.
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		TwoFADone:   false,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"email":           user.Email,
		"display_name":    user.DisplayName,
		"role":            user.Role,
		"needs_2fa_setup": user.Needs2FASetup(),
	})
}

// TwoFASetup generates a TOTP secret for the logged-in user and returns
// the provisioning QR code as a base64 PNG.
//
// POST /admin/2fa/setup
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "GigFin",
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"secret":  key.Secret(),
		"qr_png":  base64.StdEncoding.EncodeToString(qrPNG),
		"account": sess.Email,
	})
}

// TwoFAVerify validates the TOTP code and completes authentication.
//
// POST /admin/2fa/verify {"code": "123456"}
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if user.TOTPSecret == nil {
		writeError(w, http.StatusConflict, "2fa not set up")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, http.StatusUnauthorized, "invalid code")
		return
	}

	// If this is the first-time setup, enable TOTP in the database.
	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	// Mark 2FA as complete in the session.
	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"verified": true})
}

// Logout destroys the session.
//
// POST /admin/logout
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	writeJSON(w, http.StatusOK, map[string]any{"logged_out": true})
}
