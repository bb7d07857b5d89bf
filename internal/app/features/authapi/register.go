// internal/app/features/authapi/register.go
package authapi

import (
	"net/http"

	userstore "github.com/dalemusser/eventhub/internal/app/store/users"
	"github.com/dalemusser/eventhub/internal/app/system/auth"
	"github.com/dalemusser/eventhub/internal/app/system/httpjson"
	"github.com/dalemusser/eventhub/internal/app/system/timeouts"
	"github.com/dalemusser/eventhub/internal/domain/models"
	"go.uber.org/zap"
)

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// AdminCode is only consulted on the admin-register route.
	AdminCode string `json:"adminCode"`
}

type registerResponse struct {
	Message string               `json:"message"`
	User    models.SanitizedUser `json:"user"`
}

// ServeRegister handles POST /api/auth/register. New accounts always get
// the regular user role.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, models.RoleUser)
}

// ServeAdminRegister handles POST /api/auth/admin-register. The request
// must carry the configured admin code.
func (h *Handler) ServeAdminRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, models.RoleAdmin)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request, role string) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		if role == models.RoleAdmin {
			httpjson.Message(w, http.StatusBadRequest, "All fields including admin code are required")
		} else {
			httpjson.Message(w, http.StatusBadRequest, "Name, username, email, and password are required")
		}
		return
	}

	if role == models.RoleAdmin {
		if req.AdminCode == "" {
			httpjson.Message(w, http.StatusBadRequest, "All fields including admin code are required")
			return
		}
		if h.AdminCode == "" || req.AdminCode != h.AdminCode {
			httpjson.Message(w, http.StatusBadRequest, "Invalid admin authentication code")
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Log.Error("password hashing failed", zap.Error(err))
		httpjson.Message(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "user registration")
	defer cancel()

	created, err := userstore.New(h.DB).Create(ctx, models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Role:     role,
		Approved: true,
	})
	switch err {
	case nil:
	case userstore.ErrDuplicateUsername:
		httpjson.Message(w, http.StatusBadRequest, "Username already exists")
		return
	case userstore.ErrDuplicateEmail:
		httpjson.Message(w, http.StatusBadRequest, "Email already exists")
		return
	default:
		h.Log.Error("user create failed", zap.Error(err), zap.String("role", role))
		httpjson.Message(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	msg := "User registered successfully"
	if role == models.RoleAdmin {
		msg = "Admin registered successfully"
	}

	h.Log.Info("account registered",
		zap.String("user_id", created.ID.Hex()),
		zap.String("role", created.Role),
	)
	httpjson.Write(w, http.StatusCreated, registerResponse{
		Message: msg,
		User:    created.Sanitized(),
	})
}
