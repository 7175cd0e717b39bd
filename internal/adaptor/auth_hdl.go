package adaptor

import (
	"net/http"

	"laundry-service/internal/dto/request"
	"laundry-service/internal/usecase"
	"laundry-service/pkg/utils"

	"go.uber.org/zap"
)

var (
	registerFields = []string{
		"username", "password", "confirm_password", "first_name",
		"last_name", "email", "phone", "address",
	}
	loginFields = []string{"email", "password"}
)

type AuthHandler struct {
	service usecase.AuthService
	codec   *utils.SessionCodec
	appName string
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, codec *utils.SessionCodec, appName string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		codec:   codec,
		appName: appName,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Index handles GET /
func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"app": h.appName}
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		data["user"] = identity
	}
	utils.ResponseSuccess(w, "Welcome to "+h.appName, data)
}

// RegisterForm handles GET /register
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Register", map[string]any{"fields": registerFields})
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := decodeRequest(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register", utils.Response{})
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, utils.Response{
		Status:   true,
		Message:  "Registration successful! Please log in.",
		Data:     user,
		Redirect: "/login",
	})
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Login", map[string]any{"fields": loginFields})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := decodeRequest(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login", utils.Response{})
		return
	}

	identity := &utils.Identity{
		UserID:    auth.UserID,
		Email:     auth.Email,
		FirstName: auth.FirstName,
		LastName:  auth.LastName,
		Role:      auth.Role,
	}
	if err := h.codec.SetCookie(w, identity); err != nil {
		h.log.Error("Failed to issue session", zap.Error(err), zap.Int64("user_id", auth.UserID))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, utils.Response{
		Status:   true,
		Message:  "Login successful!",
		Data:     auth,
		Redirect: auth.Landing,
	})
}

// Logout handles GET /logout. Anonymous callers get the same answer.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())
	h.service.Logout(r.Context(), identity)
	h.codec.ClearCookie(w)

	utils.ResponseJSON(w, http.StatusOK, utils.Response{
		Status:   true,
		Message:  "You have been successfully logged out.",
		Redirect: "/",
	})
}
