package ports

import (
	"context"

	"github.com/Yadav-Aayansh/data-profile/domain/profile"
	"github.com/Yadav-Aayansh/data-profile/domain/table"
)

// Profiler computes statistical summaries of record collections. The
// context follows the codebase-wide port convention; the engine itself is a
// single blocking computation with no suspension points, so callers enforce
// time budgets externally.
type Profiler interface {
	Profile(ctx context.Context, tbl table.Table, opts profile.Options) (*profile.Summary, error)
}
