// Package api is the HTTP control surface of the gateway. Handlers read the
// session tracker and delegate every action to the messaging client.
package api

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"wa-gateway/contract"
	"wa-gateway/observability"
	"wa-gateway/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

type Options struct {
	Addr              string
	AdapterTimeout    time.Duration
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
	AllowedOrigins    []string
}

type Server struct {
	*httprouter.Router
	log      *slog.Logger
	tracker  contract.SessionTracker
	client   contract.MessagingClient
	renderer contract.QRRenderer
	journal  repositories.ILifecycleRepository
	metrics  *observability.Metrics
	validate *validator.Validate
	clock    *monotonicClock
	opts     Options
}

func NewServer(
	log *slog.Logger,
	tracker contract.SessionTracker,
	client contract.MessagingClient,
	renderer contract.QRRenderer,
	journal repositories.ILifecycleRepository,
	metrics *observability.Metrics,
	gatherer prometheus.Gatherer,
	opts Options,
) *Server {
	if opts.AdapterTimeout <= 0 {
		opts.AdapterTimeout = 30 * time.Second
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if opts.ReadHeaderTimeout <= 0 {
		opts.ReadHeaderTimeout = 5 * time.Second
	}
	s := &Server{
		Router:   httprouter.New(),
		log:      log,
		tracker:  tracker,
		client:   client,
		renderer: renderer,
		journal:  journal,
		metrics:  metrics,
		validate: validator.New(),
		clock:    newMonotonicClock(time.Now),
		opts:     opts,
	}

	s.GET("/health", s.instrument("health", s.Health))
	s.GET("/qr", s.instrument("qr", s.QR))
	s.POST("/send", s.instrument("send", s.Send))
	s.POST("/send-media", s.instrument("send_media", s.SendMedia))
	s.POST("/check-number", s.instrument("check_number", s.CheckNumber))
	s.GET("/info", s.instrument("info", s.Info))
	s.POST("/logout", s.instrument("logout", s.Logout))
	s.GET("/events", s.instrument("events", s.Events))
	s.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return s
}

// HTTPHandler is the router wrapped with CORS, as served on the wire.
func (s *Server) HTTPHandler() http.Handler {
	return cors.New(corsOptions(s.opts.AllowedOrigins)).Handler(s)
}

// Run serves until ctx ends, then drains in-flight requests for at most ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.HTTPHandler(),
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.opts.Addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
	defer cancel()
	s.log.Info("HTTP server shutting down")
	return srv.Shutdown(shutdownCtx)
}

// adapterContext detaches the call from the client connection but bounds it in time.
func (s *Server) adapterContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(r.Context()), s.opts.AdapterTimeout)
}
