package ranger

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/conneg"
	"github.com/xy-planning-network/conneg/config"
	"github.com/xy-planning-network/conneg/http/middleware"
	"github.com/xy-planning-network/conneg/http/renderers"
	"github.com/xy-planning-network/conneg/http/resp"
	"github.com/xy-planning-network/conneg/http/router"
	"github.com/xy-planning-network/conneg/http/template"
	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/telemetry"
)

// Web server defaults
const (
	DefaultServerReadTimeout  = 5 * time.Second
	DefaultServerIdleTimeout  = 120 * time.Second
	DefaultServerWriteTimeout = 5 * time.Second
	defaultShutdownTimeout    = 5 * time.Second
)

// A Ranger manages and exposes all components of a conneg app to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	cfg         *config.Config
	ctx         context.Context
	cancel      context.CancelFunc
	l           logger.Logger
	p           template.Parser
	renderers   *renderers.Set
	srv         *http.Server
	stopTracing telemetry.ShutdownFn
}

// New constructs a Ranger from the provided options,
// building every component they leave unset from the Config.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("%w: %s", conneg.ErrBadConfig, err)
		}
	}

	if r.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		r.cfg = &cfg
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.l == nil {
		r.l = logger.NewLogger(
			logger.WithEnv(r.cfg.Environment),
			logger.WithLevel(logLevel(r.cfg.LogLevel)),
			logger.WithSentryDSN(r.cfg.SentryDSN),
		)
	}
	r.l.Debug(fmt.Sprintf("using logger %T", r.l), nil)

	if r.p == nil {
		r.p = template.NewParser()
	}
	r.p.AddFn(template.Env(r.cfg.Environment))

	if r.Responder == nil {
		u, err := r.cfg.RootURL()
		if err != nil {
			return nil, err
		}

		r.Responder = resp.NewResponder(
			resp.WithLogger(r.l),
			resp.WithParser(r.p),
			resp.WithFormatParam(r.cfg.FormatParam),
			resp.WithTCN(r.cfg.TCNEnabled),
			resp.WithOverrides(r.cfg.OverridePriority),
			resp.WithRootUrl(u.String()),
		)
	}
	r.l.Debug(fmt.Sprintf("using responder with TCN %t", r.Responder.TCN()), nil)

	r.renderers = renderers.NewSet(renderers.WithLogger(r.l), renderers.WithParser(r.p))

	r.Router = router.New(r.cfg.Environment, r.Responder, middleware.LogRequest(r.l))
	r.Router.OnEveryRequest(r.middlewares()...)

	if r.srv == nil {
		r.srv = &http.Server{
			ReadTimeout:  DefaultServerReadTimeout,
			IdleTimeout:  DefaultServerIdleTimeout,
			WriteTimeout: DefaultServerWriteTimeout,
		}
	}
	if r.srv.Addr == "" {
		r.srv.Addr = r.cfg.Addr()
	}
	r.srv.Handler = r.Router
	r.srv.BaseContext = func(net.Listener) context.Context { return r.ctx }

	return r, nil
}

// middlewares lists the stack applied to every request, outermost first.
func (r *Ranger) middlewares() []middleware.Adapter {
	mws := []middleware.Adapter{
		middleware.RateLimit(middleware.NewVisitors(r.cfg.RateLimit.RPS, r.cfg.RateLimit.Burst)),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(r.l),
	}

	if u, err := r.cfg.RootURL(); err == nil && u.Scheme == "https" {
		mws = append([]middleware.Adapter{middleware.ForceHTTPS(r.cfg.Environment)}, mws...)
	}

	mws = append(mws, middleware.CORS(r.cfg.CORSOrigin))
	if r.cfg.Compress {
		mws = append(mws, middleware.Compress())
	}

	return append(mws, middleware.Negotiated())
}

// Cancel stops Guide, shutting down the web server.
func (r *Ranger) Cancel() { r.cancel() }

// Config returns the Config the Ranger was built from.
func (r *Ranger) Config() config.Config { return *r.cfg }

// EmitLogger returns the logger.Logger of the conneg app.
func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// Renderers returns the stock renderers, sharing the logger and parser of the conneg app.
func (r *Ranger) Renderers() *renderers.Set { return r.renderers }

// Guide begins the web server.
//
// These, Cancel, and canceling the context passed in with WithContext stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ln, err := net.Listen("tcp", r.srv.Addr)
	if err != nil {
		return fmt.Errorf("could not listen: %w", err)
	}

	return r.serve(ln)
}

func (r *Ranger) serve(ln net.Listener) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", ln.Addr()), nil)
		if err := r.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not serve: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		r.cancel()
		return err
	case <-r.ctx.Done():
		return r.Shutdown()
	}
}

// Shutdown shutdowns the web server, then flushes any spans not yet exported.
func (r *Ranger) Shutdown() error {
	timeout := r.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	if err := r.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	if r.stopTracing != nil {
		if err := r.stopTracing(shutdownCtx); err != nil {
			return fmt.Errorf("could not flush spans: %w", err)
		}
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

func logLevel(val string) logger.LogLevel {
	if ll := logger.NewLogLevel(val); ll != logger.LogLevelUnk {
		return ll
	}

	return logger.LogLevelInfo
}
