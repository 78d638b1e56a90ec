package workflow

import "github.com/pkg/errors"

// ErrNilDocument is returned when MapToWorkflow is invoked without a pipeline
// document. It is the only error the mapper raises; every other degraded
// condition resolves to a best-effort mapping with documentation notes in the
// output.
var ErrNilDocument = errors.New("pipeline document must be set")
