package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/account/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

const maxBodySize = 1 << 20 // 1MB

// HTTPHandler обрабатывает HTTP запросы аккаунтов
type HTTPHandler struct {
	registerUC in.RegisterUseCase
	loginUC    in.LoginUseCase
	log        *logger.Logger
}

// NewHTTPHandler создает новый HTTP handler
func NewHTTPHandler(registerUC in.RegisterUseCase, loginUC in.LoginUseCase, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		log:        log,
	}
}

// RegisterRoutes регистрирует все HTTP маршруты
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/register", h.handleRegister)
	mux.HandleFunc("POST /api/login", h.handleLogin)
}

// RegisterHTTPRequest — HTTP DTO для регистрации
type RegisterHTTPRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

// handleRegister обрабатывает POST /api/auth/register
func (h *HTTPHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req RegisterHTTPRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			h.respondError(w, http.StatusBadRequest, "empty request body")
			return
		}
		h.respondError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if req.Username == "" {
		h.respondError(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.Email == "" {
		h.respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		h.respondError(w, http.StatusBadRequest, "password is required")
		return
	}

	output, err := h.registerUC.Execute(ctx, in.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, output)
}

// LoginHTTPRequest — HTTP DTO для входа
type LoginHTTPRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin обрабатывает POST /api/auth/login
func (h *HTTPHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req LoginHTTPRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	output, err := h.loginUC.Execute(ctx, in.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output)
}

// handleUseCaseError обрабатывает ошибки use case
func (h *HTTPHandler) handleUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserAlreadyExists):
		h.respondError(w, http.StatusConflict, "user already exists")
	case errors.Is(err, domain.ErrInvalidEmail):
		h.respondError(w, http.StatusBadRequest, "invalid email format")
	case errors.Is(err, domain.ErrInvalidUsername):
		h.respondError(w, http.StatusBadRequest, "invalid username (3-32 chars, letters, digits, _ or -)")
	case errors.Is(err, domain.ErrPasswordTooShort):
		h.respondError(w, http.StatusBadRequest, "password too short (minimum 8 characters)")
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.respondError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, domain.ErrUserBanned):
		h.respondError(w, http.StatusForbidden, "account is banned")
	default:
		h.log.Error(logger.Entry{
			Action:  "account_usecase_error",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// respondJSON отправляет JSON ответ
func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error(logger.Entry{
			Action:  "encode_account_response_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
}

// respondError отправляет JSON с ошибкой
func (h *HTTPHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
