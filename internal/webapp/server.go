// Package webapp serves the HTTP API behind the assessment wizard.
//
// The API is stateless: every request carries the full answer set and gets
// back the full scoring and remediation result. Nothing is persisted.
package webapp

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/ironclad-sec/netbaseline/internal/answers"
	"github.com/ironclad-sec/netbaseline/internal/catalog"
	"github.com/ironclad-sec/netbaseline/internal/report"
)

const (
	// maxBodySize limits assess request bodies. Answer sets are tiny; a
	// larger body is either a mistake or abuse.
	maxBodySize = 64 * 1024

	// defaultBurst is the token-bucket burst per client.
	defaultBurst = 5
)

// Server is the wizard API backend.
type Server struct {
	catalog *catalog.Catalog
	mux     *http.ServeMux

	// Per-client token buckets, keyed by remote host.
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// New creates a Server for the given catalog, limiting each client to rps
// requests per second.
func New(cat *catalog.Catalog, rps float64) *Server {
	s := &Server{
		catalog:  cat,
		mux:      http.NewServeMux(),
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    defaultBurst,
	}
	s.mux.HandleFunc("GET /api/questions", s.handleQuestions)
	s.mux.HandleFunc("POST /api/assess", s.handleAssess)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.withLogging(s.withRateLimit(s.mux))
}

// assessRequest is the POST /api/assess payload.
type assessRequest struct {
	Answers answers.Set `json:"answers"`
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req assessRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	// Scoring is total: missing or unrecognized answers degrade to the
	// conservative interpretation, so any decoded payload is assessable.
	res := report.NewResult(req.Answers)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// limiter returns the token bucket for a client, creating it on first use.
func (s *Server) limiter(remoteAddr string) *rate.Limiter {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[host]
	if !ok {
		l = rate.NewLimiter(s.rps, s.burst)
		s.limiters[host] = l
	}
	return l
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter(r.RemoteAddr).Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
