package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

const maxBodySize = 1 << 20 // 1MB

// HTTPHandler обрабатывает HTTP запросы AI-сервиса
type HTTPHandler struct {
	analyzeUC   in.AnalyzeReviewUseCase
	insightsUC  in.DriverInsightsUseCase
	recommendUC in.RecommendationsUseCase
	assistantUC in.AssistantUseCase
	chatUC      in.ChatUseCase
	statusUC    in.StatusUseCase
	log         *logger.Logger
}

// NewHTTPHandler создает новый HTTP handler
func NewHTTPHandler(
	analyzeUC in.AnalyzeReviewUseCase,
	insightsUC in.DriverInsightsUseCase,
	recommendUC in.RecommendationsUseCase,
	assistantUC in.AssistantUseCase,
	chatUC in.ChatUseCase,
	statusUC in.StatusUseCase,
	log *logger.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		analyzeUC:   analyzeUC,
		insightsUC:  insightsUC,
		recommendUC: recommendUC,
		assistantUC: assistantUC,
		chatUC:      chatUC,
		statusUC:    statusUC,
		log:         log,
	}
}

// RegisterRoutes регистрирует все HTTP маршруты AI-сервиса
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/ai/analyze-review", h.handleAnalyzeReview)
	mux.HandleFunc("GET /api/ai/driver-insights/{driverId}", h.handleDriverInsights)
	mux.HandleFunc("POST /api/ai/driver-recommendations", h.handleRecommendations)
	mux.HandleFunc("POST /api/ai/assistant", h.handleAssistant)
	mux.HandleFunc("POST /api/ai/chatbot", h.handleChat)
	mux.HandleFunc("GET /api/ai/status", h.handleStatus)
}

// AnalyzeReviewHTTPRequest — HTTP DTO анализа отзыва
type AnalyzeReviewHTTPRequest struct {
	Review   string `json:"review"`
	DriverID string `json:"driverId"`
}

// handleAnalyzeReview обрабатывает POST /api/ai/analyze-review
func (h *HTTPHandler) handleAnalyzeReview(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeReviewHTTPRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.DriverID == "" {
		h.respondError(w, http.StatusBadRequest, "driverId is required")
		return
	}

	result, err := h.analyzeUC.Execute(r.Context(), in.AnalyzeReviewInput{
		Review:   req.Review,
		DriverID: req.DriverID,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		*domain.AnalysisResult
		AIGenerated  bool `json:"aiGenerated"`
		UsingLocalAI bool `json:"usingLocalAI"`
	}{result, true, h.usingLocalAI(r)})
}

// handleDriverInsights обрабатывает GET /api/ai/driver-insights/{driverId}
func (h *HTTPHandler) handleDriverInsights(w http.ResponseWriter, r *http.Request) {
	output, err := h.insightsUC.Execute(r.Context(), r.PathValue("driverId"))
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		*in.DriverInsightsOutput
		AIGenerated  bool `json:"aiGenerated"`
		UsingLocalAI bool `json:"usingLocalAI"`
	}{output, true, h.usingLocalAI(r)})
}

// RecommendationsHTTPRequest — HTTP DTO подбора водителей
type RecommendationsHTTPRequest struct {
	UserID      string `json:"userId"`
	Preferences string `json:"preferences"`
}

// handleRecommendations обрабатывает POST /api/ai/driver-recommendations
func (h *HTTPHandler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsHTTPRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	recommendations, err := h.recommendUC.Execute(r.Context(), in.RecommendationsInput{
		UserID:      req.UserID,
		Preferences: req.Preferences,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		Recommendations []domain.Recommendation `json:"recommendations"`
		AIGenerated     bool                    `json:"aiGenerated"`
		UsingLocalAI    bool                    `json:"usingLocalAI"`
	}{recommendations, true, h.usingLocalAI(r)})
}

// AssistantHTTPRequest — HTTP DTO вопроса ассистенту
type AssistantHTTPRequest struct {
	Query             string `json:"query"`
	IncludeCarInfo    bool   `json:"includeCarInfo"`
	IncludeDriverInfo bool   `json:"includeDriverInfo"`
}

// handleAssistant обрабатывает POST /api/ai/assistant
func (h *HTTPHandler) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var req AssistantHTTPRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	response, err := h.assistantUC.Execute(r.Context(), in.AssistantInput{
		Query:             req.Query,
		IncludeCarInfo:    req.IncludeCarInfo,
		IncludeDriverInfo: req.IncludeDriverInfo,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		*domain.AssistantResponse
		AIGenerated  bool `json:"aiGenerated"`
		UsingLocalAI bool `json:"usingLocalAI"`
	}{response, true, h.usingLocalAI(r)})
}

// ChatHTTPRequest — HTTP DTO сообщения чат-боту. История диалога
// передается клиентом целиком с каждым запросом.
type ChatHTTPRequest struct {
	Message string               `json:"message"`
	History []domain.ChatMessage `json:"history"`
}

// handleChat обрабатывает POST /api/ai/chatbot
func (h *HTTPHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatHTTPRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	output, err := h.chatUC.Execute(r.Context(), in.ChatInput{
		Message: req.Message,
		History: req.History,
	})
	if err != nil {
		h.handleUseCaseError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, struct {
		Response     string `json:"response"`
		AIGenerated  bool   `json:"aiGenerated"`
		UsingLocalAI bool   `json:"usingLocalAI"`
	}{output.Reply, true, output.Local})
}

// handleStatus обрабатывает GET /api/ai/status
func (h *HTTPHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.statusUC.Execute(r.Context()))
}

// decodeBody декодирует JSON тело запроса, false при ошибке (ответ уже отправлен)
func (h *HTTPHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			h.respondError(w, http.StatusBadRequest, "empty request body")
			return false
		}
		h.respondError(w, http.StatusBadRequest, "invalid request format")
		return false
	}
	return true
}

// usingLocalAI — текущий режим для флага в ответах локальных анализаторов
func (h *HTTPHandler) usingLocalAI(r *http.Request) bool {
	return h.statusUC.Execute(r.Context()).UsingLocalAI
}

// handleUseCaseError обрабатывает ошибки use case
func (h *HTTPHandler) handleUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDriverNotFound):
		h.respondError(w, http.StatusNotFound, "driver not found")
	case errors.Is(err, domain.ErrEmptyQuery):
		h.respondError(w, http.StatusBadRequest, "query is required")
	case errors.Is(err, domain.ErrEmptyMessage):
		h.respondError(w, http.StatusBadRequest, "message is required")
	default:
		h.log.Error(logger.Entry{
			Action:  "ai_usecase_error",
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
			Action:  "encode_ai_response_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
}

// respondError отправляет JSON с ошибкой
func (h *HTTPHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
