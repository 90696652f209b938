package server

import (
	"context"
	"log"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"slogforge/server/handlers"
	"slogforge/utils"
)

type Server struct {
	port   string
	server *http.Server
}

// route dispatches by HTTP method, sets permissive CORS headers and
// answers preflight requests, so the UI can call the API from another
// origin during development.
func route(byMethod map[string]http.HandlerFunc) http.HandlerFunc {
	allowed := strings.Join(slices.Sorted(maps.Keys(byMethod)), ", ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", allowed+", OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h, ok := byMethod[r.Method]
		if !ok {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		h(w, r)
	}
}

func get(h http.HandlerFunc) http.HandlerFunc {
	return route(map[string]http.HandlerFunc{http.MethodGet: h})
}

func post(h http.HandlerFunc) http.HandlerFunc {
	return route(map[string]http.HandlerFunc{http.MethodPost: h})
}

func (s *Server) setupRoutes() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", get(handlers.Health))
	mux.HandleFunc("/api/{$}", get(handlers.Info))

	mux.HandleFunc("/api/syslog/parse", post(handlers.ParseSyslog))
	mux.HandleFunc("/api/syslog/parse-only", post(handlers.ParseSyslogOnly))
	mux.HandleFunc("/api/syslog/generate", post(handlers.GenerateSyslog))
	mux.HandleFunc("/api/syslog/generate-only", post(handlers.GenerateSyslogOnly))
	mux.HandleFunc("/api/syslog/validate/{message}/{rfc_version}", get(handlers.ValidateSyslog))

	mux.HandleFunc("/api/examples", route(map[string]http.HandlerFunc{
		http.MethodGet:  handlers.GetExamples,
		http.MethodPost: handlers.CreateExample,
	}))
	mux.HandleFunc("/api/examples/{id}", route(map[string]http.HandlerFunc{
		http.MethodGet:    handlers.GetExample,
		http.MethodPut:    handlers.UpdateExample,
		http.MethodDelete: handlers.DeleteExample,
	}))

	mux.HandleFunc("/api/test/test-server/{port}", post(handlers.TestServer))

	// Serve the frontend for everything else
	mux.Handle("/", handlers.StaticHandler(utils.StaticDir))

	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: mux,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	log.Printf("HTTP server is running on :%s", s.port)
	return s.server.ListenAndServe()
}

// Shutdown stops accepting new connections and waits for in-flight
// requests to finish, up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Handler returns the configured route handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// NewServer creates a new HTTP server instance
func NewServer() *Server {
	return &Server{
		port: utils.HttpPort,
	}
}

// StartHTTPServer runs the HTTP server until SIGINT or SIGTERM, then
// drains in-flight requests before returning.
func StartHTTPServer() {
	server := NewServer()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start HTTP server:", err)
		}
	case <-stop:
		log.Println("Shutting down HTTP server")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}
	}
}
