// internal/app/features/authapi/login.go
package authapi

import (
	"net/http"

	userstore "github.com/dalemusser/eventhub/internal/app/store/users"
	"github.com/dalemusser/eventhub/internal/app/system/auth"
	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string               `json:"message"`
	Token   string               `json:"token"`
	User    models.SanitizedUser `json:"user"`
}

// ServeLogin handles POST /api/auth/login for regular users.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, models.RoleUser, "Invalid email or password", "Account not approved yet", "User login successful")
}

// ServeAdminLogin handles POST /api/auth/admin-login. Credentials are
// role-scoped so a regular user's password never opens an admin session.
func (h *Handler) ServeAdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, models.RoleAdmin, "Invalid admin credentials", "Admin account not approved yet", "Admin login successful")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, role, badCreds, notApproved, okMsg string) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "login lookup")
	defer cancel()

	u, err := userstore.New(h.DB).GetByEmailAndRole(ctx, req.Email, role)
	if err == mongo.ErrNoDocuments {
		httpjson.Message(w, http.StatusBadRequest, badCreds)
		return
	}
	if err != nil {
		h.Log.Error("login lookup failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Login failed")
		return
	}

	// Same status and message as an unknown email so the two cases are
	// indistinguishable to a caller probing for accounts.
	if !auth.CheckPassword(u.Password, req.Password) {
		httpjson.Message(w, http.StatusBadRequest, badCreds)
		return
	}

	if !u.Approved {
		httpjson.Message(w, http.StatusBadRequest, notApproved)
		return
	}

	token, _, err := h.Tokens.Issue(u.ID.Hex(), u.Email, u.Role)
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.Log.Info("login",
		zap.String("user_id", u.ID.Hex()),
		zap.String("role", u.Role),
	)
	httpjson.Write(w, http.StatusOK, loginResponse{
		Message: okMsg,
		Token:   token,
		User:    u.Sanitized(),
	})
}
