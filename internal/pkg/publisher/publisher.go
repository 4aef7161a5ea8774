package publisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/anicoll/spotprice-report/internal/pkg/model"
	"go.uber.org/zap"
)

var ErrAlreadyRegistered = errors.New("publisher already registered")

type publisher interface {
	// Write renders the points in the order given.
	Write(ctx context.Context, points model.DataPoints) error
}

type entry struct {
	name      string
	publisher publisher
}

// Registry fans one data point sequence out to every registered publisher.
type Registry struct {
	publishers []entry
	logger     *zap.Logger
}

func New() *Registry {
	return &Registry{logger: zap.L()}
}

func (r *Registry) RegisterPublisher(name string, p publisher) error {
	for _, e := range r.publishers {
		if e.name == name {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
		}
	}
	r.publishers = append(r.publishers, entry{name: name, publisher: p})
	return nil
}

// Publish writes points to each publisher in registration order and stops at the first failure.
func (r *Registry) Publish(ctx context.Context, points model.DataPoints) error {
	for _, e := range r.publishers {
		if err := e.publisher.Write(ctx, points); err != nil {
			r.logger.Error("failed to publish data", zap.Error(err), zap.String("publisher", e.name))
			return fmt.Errorf("publisher %s: %w", e.name, err)
		}
		r.logger.Debug("published data", zap.Int("count", len(points)), zap.String("publisher", e.name))
	}
	return nil
}
