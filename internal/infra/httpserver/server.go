package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ameerdhi7/bashy/internal/domain"
	"github.com/ameerdhi7/bashy/internal/ports"
)

const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultShutdownTimeout   = 5 * time.Second
)

type Server struct {
	handler           http.Handler
	log               *slog.Logger
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return func(s *Server) { s.readHeaderTimeout = d }
}

// WithShutdownTimeout bounds how long in-flight requests get once ctx is done.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = d }
}

func New(reply domain.Reply, opts ...Option) *Server {
	s := &Server{
		handler:           NewHandler(reply),
		log:               slog.New(slog.NewJSONHandler(io.Discard, nil)),
		readHeaderTimeout: defaultReadHeaderTimeout,
		shutdownTimeout:   defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.Responder = (*Server)(nil)

// ListenAndServe binds addr as given and serves until ctx is done.
// Bind failures are returned as KindBind errors.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen(network(addr), addr)
	if err != nil {
		return &domain.OpError{
			Op:   "httpserver.listen",
			Kind: domain.KindBind,
			Err:  err,
		}
	}
	return s.Serve(ctx, ln, ready)
}

// network keeps IPv4 literals such as 0.0.0.0 on IPv4; "tcp" would open a
// dual-stack socket for the wildcard address.
func network(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return "tcp"
	}
	if ip := net.ParseIP(host); ip != nil && !strings.Contains(host, ":") {
		return "tcp4"
	}
	return "tcp"
}

// Serve takes ownership of ln and closes it on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener, ready func(net.Addr)) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelWarn),
	}

	if ready != nil {
		ready(ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return &domain.OpError{
			Op:   "httpserver.serve",
			Kind: domain.KindExecution,
			Err:  err,
		}

	case <-ctx.Done():
		s.log.Info("server.shutdown", "addr", ln.Addr().String(), "timeout", s.shutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			<-errCh
			return &domain.OpError{
				Op:   "httpserver.shutdown",
				Kind: domain.KindExecution,
				Err:  err,
			}
		}
		<-errCh
		return nil
	}
}
