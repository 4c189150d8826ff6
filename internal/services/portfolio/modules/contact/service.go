package contact

import (
	"context"

	"github.com/louisbranch/portfolio/internal/content"
	"github.com/louisbranch/portfolio/internal/platform/metrics"
	module "github.com/louisbranch/portfolio/internal/services/portfolio/module"
	"go.uber.org/zap"
)

// Submission outcomes recorded on the contact metrics.
const (
	OutcomeSent     = "sent"
	OutcomeInvalid  = "invalid"
	OutcomeHoneypot = "honeypot"
	OutcomeError    = metrics.OutcomeError
)

// Gateway stores contact messages.
type Gateway interface {
	CreateContactMessage(ctx context.Context, msg content.ContactMessage) error
}

type service struct {
	gateway Gateway
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func newService(gateway Gateway, deps module.Dependencies) service {
	return service{gateway: gateway, logger: deps.Log(), metrics: deps.Metrics}
}

// result is the settled outcome of one submission.
type result struct {
	outcome string
	errors  content.FieldErrors
	err     error
}

// submit applies the honeypot, validates and writes in that order. Bot
// submissions report success without writing; invalid input never reaches
// the backend.
func (s service) submit(ctx context.Context, input content.ContactInput) result {
	res := s.evaluate(ctx, input)
	s.metrics.ObserveContact(res.outcome)
	return res
}

func (s service) evaluate(ctx context.Context, input content.ContactInput) result {
	if input.IsBot() {
		s.logger.Info("contact honeypot triggered")
		return result{outcome: OutcomeHoneypot}
	}
	if errs := input.Validate(); len(errs) > 0 {
		return result{outcome: OutcomeInvalid, errors: errs}
	}
	if err := s.gateway.CreateContactMessage(ctx, input.Row()); err != nil {
		s.logger.Error("store contact message", zap.Error(err))
		return result{outcome: OutcomeError, err: err}
	}
	return result{outcome: OutcomeSent}
}
