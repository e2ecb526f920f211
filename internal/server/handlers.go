package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/csiboto/kyle/internal/llm"
	"github.com/csiboto/kyle/internal/types"
)

// ChatRequest is the request body for /api/chat. History is the
// caller-owned conversation window, replayed in full on every turn.
type ChatRequest struct {
	Message string        `json:"message"`
	History []llm.Message `json:"history,omitempty"`
}

// ChatResponse is the response for /api/chat
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ResearchRequest is the request body for /api/research
type ResearchRequest struct {
	Company string `json:"company"`
}

// ResearchResponse is the response for /api/research
type ResearchResponse struct {
	Research string `json:"research"`
}

// URLRequest is the request body for /api/analyze-url
type URLRequest struct {
	URL string `json:"url"`
}

// TextResponse is the response for the generation endpoints
type TextResponse struct {
	Content string `json:"content"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	reply, err := s.assistant.Chat(r.Context(), req.History, req.Message)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{Reply: reply})
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	research, err := s.assistant.ResearchCompany(r.Context(), req.Company)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ResearchResponse{Research: research})
}

func (s *Server) handleAnalyzeFit(w http.ResponseWriter, r *http.Request) {
	var req types.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	fit, err := s.assistant.AnalyzeFit(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, fit)
}

func (s *Server) handleAnalyzeURL(w http.ResponseWriter, r *http.Request) {
	var req URLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.assistant.AnalyzeURL(r.Context(), req.URL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleGenerateLetter(w http.ResponseWriter, r *http.Request) {
	var req types.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	letter, err := s.assistant.GenerateLetter(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, TextResponse{Content: letter})
}

func (s *Server) handleGenerateCV(w http.ResponseWriter, r *http.Request) {
	var req types.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cv, err := s.assistant.GenerateCV(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, TextResponse{Content: cv})
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.assistant.Profile())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
