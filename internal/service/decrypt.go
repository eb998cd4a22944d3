package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/amnplus-client/models"
)

// openFunc decrypts one record.
type openFunc[R, D any] func(R) (D, error)

// describeFunc names a record in an [models.ItemError].
type describeFunc[R any] func(R) (id, title string)

// openAll decrypts records with at most workers concurrent decryptions.
// Opened items keep the order of records. A record that fails to open is
// reported in failed and does not stop the others; only cancellation of ctx
// fails the whole batch.
func openAll[R, D any](
	ctx context.Context,
	workers int,
	records []R,
	open openFunc[R, D],
	describe describeFunc[R],
) (items []D, failed []models.ItemError, err error) {
	if workers <= 0 {
		workers = 1
	}

	opened := make([]D, len(records))
	errs := make([]error, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, record := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opened[i], errs[i] = open(record)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	items = make([]D, 0, len(records))
	for i, record := range records {
		if errs[i] != nil {
			id, title := describe(record)
			failed = append(failed, models.ItemError{ID: id, Title: title, Err: errs[i]})
			continue
		}
		items = append(items, opened[i])
	}

	return items, failed, nil
}
