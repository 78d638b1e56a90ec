package main

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type errorChan struct {
	c    <-chan error
	name string
}

func newErrorChan(name string, c <-chan error) *errorChan {
	return &errorChan{
		c:    c,
		name: name,
	}
}

// mergeErrors merges multiple channels of errors, wrapping each error with
// the name of the input it came from.
// Based on https://blog.golang.org/pipelines.
func mergeErrors(cs ...*errorChan) <-chan error {
	var wg sync.WaitGroup
	// The output channel holds as many errors as there are inputs, so the
	// forwarding goroutines never block on a slow reader.
	out := make(chan error, len(cs))

	output := func(c *errorChan) {
		defer wg.Done()
		if c.c == nil {
			return
		}
		for n := range c.c {
			out <- errors.Wrap(n, c.name)
		}
	}
	wg.Add(len(cs))
	for _, c := range cs {
		go output(c)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// runBatch migrates inputs concurrently, at most concurrency at a time. One
// failing input never aborts the others; all failures are collected and
// returned, each wrapped with its input name.
func runBatch(ctx context.Context, inputs []string, concurrency int, fn func(string) error) []error {
	if concurrency < 1 {
		concurrency = 1
	}

	group := new(errgroup.Group)
	group.SetLimit(concurrency)

	chans := make([]*errorChan, 0, len(inputs))
	for _, input := range inputs {
		c := make(chan error, 1)
		chans = append(chans, newErrorChan(input, c))

		input := input
		group.Go(func() error {
			defer close(c)

			if err := ctx.Err(); err != nil {
				c <- err
				return nil
			}

			if err := fn(input); err != nil {
				c <- err
			}

			return nil
		})
	}

	merged := mergeErrors(chans...)

	// Group members never return errors; Wait only fences the batch.
	_ = group.Wait()

	var errs []error
	for err := range merged {
		errs = append(errs, err)
	}

	return errs
}
