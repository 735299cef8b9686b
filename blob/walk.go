// Package blob provides asynchronous loading of file contents into a fixed
// table of slots, driven by a non-blocking host-side pump.
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package blob

import (
	"context"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// WalkDir constructs a loader with one slot per regular file under the
// given roots. Roots are walked in parallel; slot order is root order, then
// lexical path order within each root.
func WalkDir(roots ...string) (*Loader, error) {
	if len(roots) == 0 {
		return nil, errors.New("blob: no roots to walk")
	}
	var (
		perRoot    = make([][]string, len(roots))
		group, ctx = errgroup.WithContext(context.Background())
	)
	for i, root := range roots {
		group.Go(func() error {
			gOpts := &godirwalk.Options{
				Callback: func(fqn string, de *godirwalk.Dirent) error {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
					if de.IsRegular() {
						perRoot[i] = append(perRoot[i], fqn)
					}
					return nil
				},
				Unsorted: false,
			}
			return godirwalk.Walk(root, gOpts)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.WithMessage(err, "walk failed")
	}

	var names []string
	for _, ns := range perRoot {
		names = append(names, ns...)
	}
	return New(names), nil
}
