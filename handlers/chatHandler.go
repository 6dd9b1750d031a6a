package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"advisorchat/db"
	"advisorchat/models"
	"advisorchat/services"
	"advisorchat/services/advisor"

	"github.com/gorilla/mux"
)

type ChatHandler struct {
	service  *advisor.Service
	students *services.StudentService
}

func NewChatHandler(service *advisor.Service, students *services.StudentService) *ChatHandler {
	return &ChatHandler{
		service:  service,
		students: students,
	}
}

func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/chat", h.Chat).Methods("POST")
	router.HandleFunc("/students/search", h.SearchStudents).Methods("GET")
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received chat request")

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode chat request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.UserMessage) == "" {
		log.Printf("[ERROR] Missing phone or userMessage in chat request")
		h.writeErrorResponse(w, http.StatusBadRequest, "phone and userMessage are required")
		return
	}

	botMessage, err := h.service.Chat(r.Context(), req.Phone, req.UserMessage)
	if err != nil {
		if errors.Is(err, db.ErrStudentNotFound) {
			log.Printf("[ERROR] No profile found for chat request")
			h.writeErrorResponse(w, http.StatusNotFound, advisor.StudentNotFoundMessage)
			return
		}
		log.Printf("[ERROR] Chat turn failed: %v", err)
		h.writeErrorResponse(w, http.StatusBadGateway, advisor.CompletionErrorMessage)
		return
	}

	log.Printf("[INFO] Chat turn completed successfully")
	h.writeJSONResponse(w, http.StatusOK, models.ChatResponse{BotMessage: botMessage})
}

func (h *ChatHandler) SearchStudents(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received student search request")

	students, err := h.students.SearchStudentsByName(r.URL.Query().Get("name"))
	if err != nil {
		log.Printf("[ERROR] Student search failed: %v", err)
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if students == nil {
		students = []*models.StudentProfile{}
	}

	h.writeJSONResponse(w, http.StatusOK, students)
}

func (h *ChatHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *ChatHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
