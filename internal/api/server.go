package api

import (
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/founderlink/backend/internal/engine"
	"github.com/founderlink/backend/internal/model"
	"github.com/founderlink/backend/internal/search"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router *http.ServeMux
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Logger: logger,
		Router: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/search", s.handleSearch)
	s.Router.HandleFunc("/api/v1/recommend", s.handleRecommend)
	s.Router.HandleFunc("/api/v1/summarize", s.handleSummarize)
	s.Router.HandleFunc("/api/v1/sentiment", s.handleSentiment)
	s.Router.HandleFunc("/api/v1/tags", s.handleTags)
	s.Router.HandleFunc("/api/v1/compatibility", s.handleCompatibility)
	s.Router.HandleFunc("/api/v1/potential", s.handlePotential)
	s.Router.HandleFunc("/api/v1/chat", s.handleChat)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
}

func (s *Server) Start(port string) error {
	s.Logger.Infof("Starting API Server on %s", port)
	return http.ListenAndServe(port, s.Router)
}

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
}

type SearchResponse struct {
	Query   string             `json:"query"`
	Results []SearchResultView `json:"results"`
}

type SearchResultView struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Tagline string  `json:"tagline"`
	Score   float64 `json:"score"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}

type CompatibilityResponse struct {
	Score int `json:"score"`
}

type StatusResponse struct {
	RequestsServed int64  `json:"requests_served"`
	Uptime         string `json:"uptime"`
}

// Handlers

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'q' is required"})
		return
	}

	hits, err := s.Engine.SimilaritySearch(query, intParam(r, "limit"))
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, SearchResponse{
		Query:   query,
		Results: toResultViews(hits),
	})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Investor *model.Investor `json:"investor"`
		Limit    int             `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	hits, err := s.Engine.Recommend(req.Investor, req.Limit)
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, SearchResponse{Results: toResultViews(hits)})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Text         string `json:"text"`
		MaxSentences int    `json:"maxSentences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	jsonResponse(w, http.StatusOK, SummarizeResponse{
		Summary: s.Engine.Summarize(req.Text, req.MaxSentences),
	})
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Text   string       `json:"text"`
		Rating model.Number `json:"rating,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	jsonResponse(w, http.StatusOK, s.Engine.Sentiment(req.Text, float64(req.Rating)))
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Text    string `json:"text"`
		MaxTags int    `json:"maxTags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	jsonResponse(w, http.StatusOK, TagsResponse{Tags: s.Engine.Tags(req.Text, req.MaxTags)})
}

func (s *Server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Investor *model.Investor `json:"investor"`
		Startup  *model.Startup  `json:"startup"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}
	if req.Startup == nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Startup is required"})
		return
	}

	jsonResponse(w, http.StatusOK, CompatibilityResponse{
		Score: s.Engine.Compatibility(req.Investor, req.Startup),
	})
}

func (s *Server) handlePotential(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Startup *model.Startup `json:"startup"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}
	if req.Startup == nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Startup is required"})
		return
	}

	jsonResponse(w, http.StatusOK, s.Engine.Potential(req.Startup))
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Query string          `json:"query"`
		User  *model.Investor `json:"user,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}
	if req.Query == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query is required"})
		return
	}

	reply, err := s.Engine.Chat(req.Query, req.User)
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, reply)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, StatusResponse{
		RequestsServed: s.Engine.RequestsServed(),
		Uptime:         time.Since(s.Engine.Stats.StartTime).String(),
	})
}

func toResultViews(hits []search.ScoredStartup) []SearchResultView {
	views := make([]SearchResultView, len(hits))
	for i, hit := range hits {
		views[i] = SearchResultView{
			ID:      hit.Startup.ID,
			Name:    hit.Startup.Name,
			Tagline: hit.Startup.Tagline,
			Score:   hit.Score,
		}
	}
	return views
}

func intParam(r *http.Request, key string) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			return value
		}
	}
	return 0
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
