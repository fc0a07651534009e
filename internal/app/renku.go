// Package app wires the blueprint loader and the tree validator behind
// one facade the CLI talks to.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/keremk/renku/internal/domain/blueprint"
	"github.com/keremk/renku/internal/domain/validator"
)

// Renku is the application facade.
type Renku struct {
	out    io.Writer
	loader *blueprint.Loader
}

// New creates the application with the given output writer.
func New(out io.Writer) *Renku {
	return &Renku{
		out:    out,
		loader: blueprint.NewLoader(),
	}
}

// ValidateOptions configures validation behavior.
type ValidateOptions struct {
	// ErrorsOnly discards warnings from the result.
	ErrorsOnly bool
	// Quiet suppresses progress output.
	Quiet bool
}

// Validate loads the blueprint tree rooted at path and validates it.
// A load failure returns an error; validation findings never do.
func (r *Renku) Validate(_ context.Context, path string, opts ValidateOptions) (*validator.Result, error) {
	root, err := r.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load blueprint: %w", err)
	}

	if !opts.Quiet {
		count := 0
		root.Walk(func(*blueprint.TreeNode) { count++ })
		r.printf("Loaded blueprint from %s (%d documents)\n", path, count)
	}

	result := validator.ValidateTree(root, validator.Options{ErrorsOnly: opts.ErrorsOnly})
	return &result, nil
}

// printf writes to the output writer, ignoring errors.
func (r *Renku) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
