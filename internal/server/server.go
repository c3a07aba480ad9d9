package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/handydiet/internal/diet"
)

//go:embed web
var webFS embed.FS

// Error messages returned by GET /api/diet.
const (
	MsgLoadFailed  = "Failed to load diet data"
	MsgInvalidData = "Invalid diet data format"
)

const shutdownTimeout = 5 * time.Second

// Options configure a Server.
type Options struct {
	// DataFile is the dataset served at /api/diet, read on every request.
	DataFile string
	// StaticDir holds static assets. Empty serves the built-in page.
	StaticDir string
	Logger    *zap.Logger
}

// Server serves the dataset and the static front end.
type Server struct {
	mux      *http.ServeMux
	dataFile string
	logger   *zap.Logger
}

// New builds a Server with its routes registered.
func New(opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		mux:      http.NewServeMux(),
		dataFile: opts.DataFile,
		logger:   logger,
	}
	static, err := staticFiles(opts.StaticDir)
	if err != nil {
		return nil, err
	}
	s.routes(static)
	return s, nil
}

func staticFiles(dir string) (fs.FS, error) {
	if strings.TrimSpace(dir) == "" {
		return fs.Sub(webFS, "web")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir: %s is not a directory", dir)
	}
	return os.DirFS(filepath.Clean(dir)), nil
}

func (s *Server) routes(static fs.FS) {
	s.mux.HandleFunc("GET /api/diet", s.handleDiet)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /", http.FileServer(http.FS(static)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	s.mux.ServeHTTP(w, r)
}

// GET /api/diet: the dataset file as order-preserving JSON.
func (s *Server) handleDiet(w http.ResponseWriter, _ *http.Request) {
	data, err := diet.Load(s.dataFile)
	if err != nil {
		if errors.Is(err, diet.ErrInvalidDataset) {
			s.logger.Error("invalid diet data", zap.String("path", s.dataFile), zap.Error(err))
			jsonError(w, MsgInvalidData, http.StatusInternalServerError)
			return
		}
		s.logger.Error("failed to read diet data", zap.String("path", s.dataFile), zap.Error(err))
		jsonError(w, MsgLoadFailed, http.StatusInternalServerError)
		return
	}
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("encode diet data", zap.Error(err))
		jsonError(w, MsgInvalidData, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Run serves h on addr until ctx is cancelled, then shuts down gracefully.
// If ready is non-nil it receives the bound address once listening.
func Run(ctx context.Context, addr string, h http.Handler, logger *zap.Logger, ready chan<- string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		if ready != nil {
			ready <- ln.Addr().String()
		}
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
