// internal/app/features/authapi/profile.go
package authapi

import (
	"net/http"

	userstore "github.com/dalemusser/eventhub/internal/app/store/users"
	"github.com/dalemusser/eventhub/internal/app/system/auth"
	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type profileUpdateRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type profileResponse struct {
	Message string               `json:"message"`
	User    models.SanitizedUser `json:"user"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

const minPasswordLen = 6

// ServeProfile handles GET /api/profile, returning the authenticated
// user's account without the password hash.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := h.callerID(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "profile fetch")
	defer cancel()

	u, err := userstore.New(h.DB).GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Message(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.Log.Error("profile fetch failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Error fetching profile")
		return
	}

	httpjson.Write(w, http.StatusOK, u.Sanitized())
}

// ServeUpdateProfile handles PUT /api/auth/profile.
func (h *Handler) ServeUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req profileUpdateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Username == "" || req.Email == "" {
		httpjson.Message(w, http.StatusBadRequest, "Name, username, and email are required")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "profile update")
	defer cancel()

	u, err := userstore.New(h.DB).UpdateProfile(ctx, id, userstore.ProfileUpdate{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	})
	switch err {
	case nil:
	case userstore.ErrDuplicateUsername:
		httpjson.Message(w, http.StatusBadRequest, "Username already taken")
		return
	case userstore.ErrDuplicateEmail:
		httpjson.Message(w, http.StatusBadRequest, "Email already taken")
		return
	case mongo.ErrNoDocuments:
		httpjson.Message(w, http.StatusNotFound, "User not found")
		return
	default:
		h.Log.Error("profile update failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Error updating profile")
		return
	}

	httpjson.Write(w, http.StatusOK, profileResponse{
		Message: "Profile updated successfully",
		User:    u.Sanitized(),
	})
}

// ServeChangePassword handles PUT /api/auth/change-password. The current
// password is re-verified so a stolen token alone cannot rotate it.
func (h *Handler) ServeChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		httpjson.Message(w, http.StatusBadRequest, "Current password and new password are required")
		return
	}
	if len(req.NewPassword) < minPasswordLen {
		httpjson.Message(w, http.StatusBadRequest, "New password must be at least 6 characters long")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "password change")
	defer cancel()

	store := userstore.New(h.DB)
	u, err := store.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Message(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.Log.Error("password change lookup failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Error changing password")
		return
	}

	if !auth.CheckPassword(u.Password, req.CurrentPassword) {
		httpjson.Message(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		h.Log.Error("password hashing failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Error changing password")
		return
	}
	if err := store.UpdatePassword(ctx, id, hash); err != nil {
		h.Log.Error("password update failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Error changing password")
		return
	}

	h.Log.Info("password changed", zap.String("user_id", id.Hex()))
	httpjson.Message(w, http.StatusOK, "Password changed successfully")
}

// callerID extracts the authenticated user's ObjectID from the request
// claims. Writes the error response itself when it fails.
func (h *Handler) callerID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	claims, ok := auth.CurrentClaims(r)
	if !ok {
		httpjson.Message(w, http.StatusUnauthorized, "Access denied")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid token")
		return primitive.NilObjectID, false
	}
	return id, true
}
