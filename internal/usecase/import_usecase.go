package usecase

import (
	"context"
	"io"
)

// ImportSkip explains why one CSV line was not imported.
type ImportSkip struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportMembersOutput summarizes a member import batch.
type ImportMembersOutput struct {
	Created int          `json:"created"`
	Skipped []ImportSkip `json:"skipped"`
}

// ImportUsecase ingests member records from an uploaded CSV file.
type ImportUsecase interface {
	// ImportMembers reads a comma-separated file with a header row and creates
	// one member per valid row under the request's tenant. Invalid rows are
	// skipped with a per-line reason; they never abort the batch.
	ImportMembers(ctx context.Context, file io.Reader) (*ImportMembersOutput, error)
}
