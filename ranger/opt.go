package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/conneg/config"
	"github.com/xy-planning-network/conneg/http/resp"
	"github.com/xy-planning-network/conneg/http/template"
	"github.com/xy-planning-network/conneg/logger"
	"github.com/xy-planning-network/conneg/telemetry"
)

// A RangerOption configures a *Ranger under construction.
//
// Components left unset by RangerOptions are built from the Config in New.
type RangerOption func(rng *Ranger) error

// WithConfig uses cfg rather than loading one with config.Load.
func WithConfig(cfg config.Config) RangerOption {
	return func(rng *Ranger) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		rng.cfg = &cfg
		return nil
	}
}

// WithContext exposes the provided context.Context to the conneg app.
// Guide returns once it is done.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		if ctx == nil {
			return fmt.Errorf("context cannot be nil")
		}

		rng.ctx = ctx
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the conneg app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		rng.l = l
		return nil
	}
}

// WithParser reads templates with p.
func WithParser(p template.Parser) RangerOption {
	return func(rng *Ranger) error {
		rng.p = p
		return nil
	}
}

// WithResponder exposes the *resp.Responder to the conneg app.
func WithResponder(r *resp.Responder) RangerOption {
	return func(rng *Ranger) error {
		rng.Responder = r
		return nil
	}
}

// WithServer exposes the *http.Server to the conneg app.
// Its handler is replaced with the router of the *Ranger.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) error {
		rng.srv = s
		return nil
	}
}

// WithTracing exports spans with the given telemetry options
// under the name serviceName.
func WithTracing(serviceName string, opts ...telemetry.OptFn) RangerOption {
	return func(rng *Ranger) error {
		shutdown, err := telemetry.InitTracer(serviceName, opts...)
		if err != nil {
			return err
		}

		rng.stopTracing = shutdown
		return nil
	}
}
