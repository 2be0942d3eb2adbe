package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	account "github.com/RedDragX/carrentalwebsite-sub000/internal/account/adapters/in/transport"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

const maxBodySize = 1 << 20 // 1MB

// HTTPHandler обрабатывает HTTP запросы каталога
type HTTPHandler struct {
	listCarsUC     in.ListCarsUseCase
	getCarUC       in.GetCarUseCase
	listDriversUC  in.ListDriversUseCase
	getDriverUC    in.GetDriverUseCase
	createReviewUC in.CreateReviewUseCase
	listReviewsUC  in.ListReviewsUseCase
	log            *logger.Logger
}

// NewHTTPHandler создает новый HTTP handler
func NewHTTPHandler(
	listCarsUC in.ListCarsUseCase,
	getCarUC in.GetCarUseCase,
	listDriversUC in.ListDriversUseCase,
	getDriverUC in.GetDriverUseCase,
	createReviewUC in.CreateReviewUseCase,
	listReviewsUC in.ListReviewsUseCase,
	log *logger.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		listCarsUC:     listCarsUC,
		getCarUC:       getCarUC,
		listDriversUC:  listDriversUC,
		getDriverUC:    getDriverUC,
		createReviewUC: createReviewUC,
		listReviewsUC:  listReviewsUC,
		log:            log,
	}
}

// RegisterRoutes регистрирует все HTTP маршруты.
// Каталог публичный, отзывы создаются только аутентифицированными пользователями.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.HandlerFunc) http.HandlerFunc) {
	mux.HandleFunc("GET /api/cars", h.handleListCars)
	mux.HandleFunc("GET /api/cars/{carId}", h.handleGetCar)
	mux.HandleFunc("GET /api/drivers", h.handleListDrivers)
	mux.HandleFunc("GET /api/drivers/{driverId}", h.handleGetDriver)
	mux.HandleFunc("GET /api/reviews/car/{carId}", h.handleListCarReviews)
	mux.HandleFunc("GET /api/reviews/driver/{driverId}", h.handleListDriverReviews)
	mux.HandleFunc("POST /api/reviews", authMiddleware(h.handleCreateReview))
}

// handleListCars обрабатывает GET /api/cars
func (h *HTTPHandler) handleListCars(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	input := in.ListCarsInput{
		Type:   query.Get("type"),
		Search: query.Get("search"),
		Limit:  parseIntParam(query.Get("limit"), 0),
		Offset: parseIntParam(query.Get("offset"), 0),
	}

	output, err := h.listCarsUC.Execute(r.Context(), input)
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output)
}

// handleGetCar обрабатывает GET /api/cars/{carId}
func (h *HTTPHandler) handleGetCar(w http.ResponseWriter, r *http.Request) {
	carID := r.PathValue("carId")

	car, err := h.getCarUC.Execute(r.Context(), carID)
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, car)
}

// handleListDrivers обрабатывает GET /api/drivers
func (h *HTTPHandler) handleListDrivers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	input := in.ListDriversInput{
		AvailableOnly: query.Get("available") == "true",
		Limit:         parseIntParam(query.Get("limit"), 0),
		Offset:        parseIntParam(query.Get("offset"), 0),
	}

	output, err := h.listDriversUC.Execute(r.Context(), input)
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output)
}

// handleGetDriver обрабатывает GET /api/drivers/{driverId}
func (h *HTTPHandler) handleGetDriver(w http.ResponseWriter, r *http.Request) {
	driverID := r.PathValue("driverId")

	driver, err := h.getDriverUC.Execute(r.Context(), driverID)
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, driver)
}

// handleListCarReviews обрабатывает GET /api/reviews/car/{carId}
func (h *HTTPHandler) handleListCarReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.listReviewsUC.Execute(r.Context(), in.ListReviewsInput{
		CarID:  r.PathValue("carId"),
		Limit:  parseIntParam(query.Get("limit"), 0),
		Offset: parseIntParam(query.Get("offset"), 0),
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output)
}

// handleListDriverReviews обрабатывает GET /api/reviews/driver/{driverId}
func (h *HTTPHandler) handleListDriverReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.listReviewsUC.Execute(r.Context(), in.ListReviewsInput{
		DriverID: r.PathValue("driverId"),
		Limit:    parseIntParam(query.Get("limit"), 0),
		Offset:   parseIntParam(query.Get("offset"), 0),
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output)
}

// CreateReviewHTTPRequest — HTTP DTO для создания отзыва
type CreateReviewHTTPRequest struct {
	CarID     string `json:"car_id,omitempty"`
	DriverID  string `json:"driver_id,omitempty"`
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
}

// handleCreateReview обрабатывает POST /api/reviews
func (h *HTTPHandler) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req CreateReviewHTTPRequest
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

	if req.BookingID == "" {
		h.respondError(w, http.StatusBadRequest, "booking_id is required")
		return
	}

	output, err := h.createReviewUC.Execute(ctx, in.CreateReviewInput{
		UserID:    account.UserIDFromContext(ctx),
		CarID:     req.CarID,
		DriverID:  req.DriverID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		City:      req.City,
		State:     req.State,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, output)
}

// handleUseCaseError обрабатывает ошибки use case
func (h *HTTPHandler) handleUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCarNotFound):
		h.respondError(w, http.StatusNotFound, "car not found")
	case errors.Is(err, domain.ErrDriverNotFound):
		h.respondError(w, http.StatusNotFound, "driver not found")
	case errors.Is(err, domain.ErrInvalidRating):
		h.respondError(w, http.StatusBadRequest, "rating must be between 1 and 5")
	case errors.Is(err, domain.ErrEmptyComment):
		h.respondError(w, http.StatusBadRequest, "comment is required")
	case errors.Is(err, domain.ErrReviewTargetMissing):
		h.respondError(w, http.StatusBadRequest, "car_id or driver_id is required")
	case errors.Is(err, domain.ErrDuplicateReview):
		h.respondError(w, http.StatusConflict, "review for this booking already exists")
	default:
		h.log.Error(logger.Entry{
			Action:  "catalog_usecase_error",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseIntParam парсит числовой query параметр
func parseIntParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
		return n
	}
	return def
}

// respondJSON отправляет JSON ответ
func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error(logger.Entry{
			Action:  "encode_catalog_response_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
}

// respondError отправляет JSON с ошибкой
func (h *HTTPHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
