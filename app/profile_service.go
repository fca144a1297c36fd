// Package app wires the profiling engine behind the Profiler port, adding
// input validation, provenance stamping, and operational logging.
package app

import (
	"context"
	"fmt"

	"github.com/Yadav-Aayansh/data-profile/domain/core"
	"github.com/Yadav-Aayansh/data-profile/domain/profile"
	"github.com/Yadav-Aayansh/data-profile/domain/table"
	"github.com/Yadav-Aayansh/data-profile/internal"
	"github.com/Yadav-Aayansh/data-profile/internal/analysis"
	"github.com/Yadav-Aayansh/data-profile/internal/config"
	"github.com/Yadav-Aayansh/data-profile/internal/errors"
)

// ProfileService is the application-level entry point for profiling.
type ProfileService struct {
	engine *analysis.Engine
	logger *internal.Logger
}

// NewProfileService creates a profile service with the default logger.
func NewProfileService() *ProfileService {
	return &ProfileService{
		engine: analysis.NewEngine(),
		logger: internal.DefaultLogger,
	}
}

// NewProfileServiceWithLogger creates a profile service with a custom logger.
func NewProfileServiceWithLogger(logger *internal.Logger) *ProfileService {
	return &ProfileService{
		engine: analysis.NewEngine(),
		logger: logger,
	}
}

// NewProfileServiceFromConfig creates a profile service whose logger honors
// the configured log level.
func NewProfileServiceFromConfig(cfg *config.Config) *ProfileService {
	return &ProfileService{
		engine: analysis.NewEngine(),
		logger: internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel)),
	}
}

// Profile validates the input, runs the engine, and stamps the summary with
// provenance. Malformed input (a nil record) is an input-contract violation
// reported before any partial computation; well-formed input cannot fail.
func (s *ProfileService) Profile(_ context.Context, tbl table.Table, opts profile.Options) (*profile.Summary, error) {
	for i, rec := range tbl {
		if rec == nil {
			return nil, errors.InvalidInput(fmt.Sprintf("record at index %d is nil", i))
		}
	}

	summary := s.engine.Profile(tbl, opts)
	summary.ID = core.ProfileID(core.NewID())
	summary.ComputedAt = core.Now()

	s.logger.Debug("profiled %d rows across %d columns (associations=%t keys=%t missingness=%t outliers=%t entropy=%t)",
		summary.RowCount, len(summary.Columns),
		opts.Associations, opts.Keys, opts.Missingness, opts.Outliers, opts.Entropy)

	return summary, nil
}
