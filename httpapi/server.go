// Package httpapi exposes the scraping and question-answering pipelines over
// HTTP. Each request that touches the database opens its own store connection
// and closes it when the request ends.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"scraperbot"
	"scraperbot/crawl"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8000"

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

// Server serves the HTTP API.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *chi.Mux

	Addr   string
	Logger *slog.Logger

	// OpenStore opens a store connection for the duration of one request.
	OpenStore func(ctx context.Context) (scraperbot.DocumentStore, error)

	// Crawl runs a crawl-and-ingest session against the given store.
	Crawl func(ctx context.Context, store scraperbot.DocumentStore, baseURL string, maxDepth int) (*crawl.Result, error)

	// Ask answers a question against the given store.
	Ask func(ctx context.Context, store scraperbot.DocumentStore, question string, topK int) (*scraperbot.Answer, error)
}

// NewServer creates a Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		Addr:   DefaultAddr,
		Logger: slog.Default(),
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleRoot)
	s.router.Post("/ingest-url", s.handleIngestURL)
	s.router.Post("/ask-question", s.handleAskQuestion)
	s.router.Delete("/reset-embeddings", s.handleResetEmbeddings)

	s.server = &http.Server{Handler: s.router}
	return s
}

// Open starts listening on s.Addr. It returns once the listener is bound; the
// server itself runs on a background goroutine until Close.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return scraperbot.Errorf(scraperbot.EINTERNAL, "listen on %s: %v", s.Addr, err)
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server stopped", "error", err)
		}
	}()

	s.Logger.Info("http server listening", "addr", s.Addr)
	return nil
}

// Close gracefully shuts the server down, waiting for in-flight requests.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// ServeHTTP makes the server usable directly as a handler in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"message": "Welcome to Scraper Bot! Use the API to scrape websites, store embeddings, and ask questions.",
	})
}

type ingestRequest struct {
	URL      string `json:"url"`
	MaxDepth *int   `json:"max_depth"`
}

type ingestResponse struct {
	Message string        `json:"message"`
	Result  *crawl.Result `json:"result"`
}

func (s *Server) handleIngestURL(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, scraperbot.Errorf(scraperbot.EINVALID, "invalid JSON body"))
		return
	}
	if req.URL == "" {
		s.respondError(w, r, scraperbot.Errorf(scraperbot.EINVALID, "url is required"))
		return
	}
	maxDepth := 1
	if req.MaxDepth != nil {
		maxDepth = *req.MaxDepth
	}

	store, err := s.OpenStore(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer store.Close(r.Context())

	result, err := s.Crawl(r.Context(), store, req.URL, maxDepth)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, ingestResponse{
		Message: "URL processed successfully!",
		Result:  result,
	})
}

type askRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k"`
}

type askResponse struct {
	Question string             `json:"question"`
	Answer   *scraperbot.Answer `json:"answer"`
}

func (s *Server) handleAskQuestion(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, scraperbot.Errorf(scraperbot.EINVALID, "invalid JSON body"))
		return
	}
	if req.Question == "" {
		s.respondError(w, r, scraperbot.Errorf(scraperbot.EINVALID, "question is required"))
		return
	}

	store, err := s.OpenStore(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	defer store.Close(r.Context())

	answer, err := s.Ask(r.Context(), store, req.Question, req.TopK)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, askResponse{Question: req.Question, Answer: answer})
}

type resetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// handleResetEmbeddings never reports failure through the status code; errors
// are converted into an in-band status payload.
func (s *Server) handleResetEmbeddings(w http.ResponseWriter, r *http.Request) {
	err := func() error {
		store, err := s.OpenStore(r.Context())
		if err != nil {
			return err
		}
		defer store.Close(r.Context())
		return store.Reset(r.Context())
	}()

	if err != nil {
		s.Logger.Error("reset failed", "error", err)
		respond(w, http.StatusOK, resetResponse{
			Status:  "error",
			Message: scraperbot.ErrorMessage(err),
		})
		return
	}

	respond(w, http.StatusOK, resetResponse{
		Status:  "success",
		Message: "All embeddings have been cleared.",
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := scraperbot.ErrorCode(err)
	if code == scraperbot.EINTERNAL {
		s.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	respond(w, statusFromCode(code), errorResponse{Error: scraperbot.ErrorMessage(err)})
}

func statusFromCode(code string) int {
	switch code {
	case scraperbot.EINVALID:
		return http.StatusBadRequest
	case scraperbot.ENOTFOUND:
		return http.StatusNotFound
	case scraperbot.ECONFLICT:
		return http.StatusConflict
	case scraperbot.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
