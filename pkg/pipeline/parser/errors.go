package parser

import "github.com/pkg/errors"

var (
	ErrEmptyDocument = errors.New("pipeline document has no stages")
	ErrNotAPipeline  = errors.New("document root is not a pipeline document")
)
