package infra_analytics

import (
	"context"

	"github.com/humanbelnik/moviehub/internal/model"
)

// Noop stands in when no tracking ID is configured.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Report(context.Context, model.UsageEvent) error {
	return nil
}
