package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	account "github.com/RedDragX/carrentalwebsite-sub000/internal/account/adapters/in/transport"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

const maxBodySize = 1 << 20 // 1MB

// HTTPHandler обрабатывает HTTP запросы бронирований
type HTTPHandler struct {
	createUC in.CreateBookingUseCase
	listUC   in.ListUserBookingsUseCase
	cancelUC in.CancelBookingUseCase
	log      *logger.Logger
}

// NewHTTPHandler создает новый HTTP handler
func NewHTTPHandler(
	createUC in.CreateBookingUseCase,
	listUC in.ListUserBookingsUseCase,
	cancelUC in.CancelBookingUseCase,
	log *logger.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		createUC: createUC,
		listUC:   listUC,
		cancelUC: cancelUC,
		log:      log,
	}
}

// RegisterRoutes регистрирует все HTTP маршруты (все требуют аутентификации)
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("POST /api/bookings", authMiddleware(h.handleCreateBooking))
	mux.HandleFunc("GET /api/bookings/user/{userId}", authMiddleware(h.handleListUserBookings))
	mux.HandleFunc("POST /api/bookings/{bookingId}/cancel", authMiddleware(h.handleCancelBooking))
}

// CreateBookingHTTPRequest — HTTP DTO для создания бронирования
type CreateBookingHTTPRequest struct {
	CarID      string `json:"car_id"`
	DriverID   string `json:"driver_id,omitempty"`
	StartDate  string `json:"start_date"` // ISO8601
	EndDate    string `json:"end_date"`   // ISO8601
	Location   string `json:"location"`
	WithDriver bool   `json:"with_driver,omitempty"`
}

// handleCreateBooking обрабатывает POST /api/bookings
func (h *HTTPHandler) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req CreateBookingHTTPRequest
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

	if req.CarID == "" {
		h.respondError(w, http.StatusBadRequest, "car_id is required")
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid start_date (expected RFC3339)")
		return
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid end_date (expected RFC3339)")
		return
	}

	output, err := h.createUC.Execute(ctx, in.CreateBookingInput{
		UserID:     account.UserIDFromContext(ctx),
		CarID:      req.CarID,
		DriverID:   req.DriverID,
		StartDate:  startDate,
		EndDate:    endDate,
		Location:   req.Location,
		WithDriver: req.WithDriver,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, output)
}

// handleListUserBookings обрабатывает GET /api/bookings/user/{userId}
func (h *HTTPHandler) handleListUserBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userId")

	// Пользователь видит только свои бронирования
	if userID != account.UserIDFromContext(ctx) {
		h.respondError(w, http.StatusForbidden, "cannot view another user's bookings")
		return
	}

	output, err := h.listUC.Execute(ctx, userID)
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output)
}

// handleCancelBooking обрабатывает POST /api/bookings/{bookingId}/cancel
func (h *HTTPHandler) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	output, err := h.cancelUC.Execute(ctx, in.CancelBookingInput{
		BookingID: r.PathValue("bookingId"),
		UserID:    account.UserIDFromContext(ctx),
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
	case errors.Is(err, domain.ErrBookingNotFound):
		h.respondError(w, http.StatusNotFound, "booking not found")
	case errors.Is(err, domain.ErrCarNotFound):
		h.respondError(w, http.StatusNotFound, "car not found")
	case errors.Is(err, domain.ErrDriverNotFound):
		h.respondError(w, http.StatusNotFound, "driver not found")
	case errors.Is(err, domain.ErrCarUnavailable):
		h.respondError(w, http.StatusConflict, "car is not available")
	case errors.Is(err, domain.ErrInvalidDates):
		h.respondError(w, http.StatusBadRequest, "end date must be after start date")
	case errors.Is(err, domain.ErrNotCancellable):
		h.respondError(w, http.StatusConflict, "booking cannot be cancelled")
	case errors.Is(err, domain.ErrNotOwner):
		h.respondError(w, http.StatusForbidden, "booking belongs to another user")
	default:
		h.log.Error(logger.Entry{
			Action:  "booking_usecase_error",
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
			Action:  "encode_booking_response_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
}

// respondError отправляет JSON с ошибкой
func (h *HTTPHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
