package storage

import (
	"context"
	"io"

	"go.uber.org/multierr"
)

// Store is the durable key/value capability behind the cart and preference
// state. Load reports presence explicitly so a missing key is not an error,
// and callers treat unparsable values as absent.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Pinger exposes the health-check surface of a backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CloseAll closes every closer, collecting all failures.
func CloseAll(closers ...io.Closer) error {
	var err error
	for _, c := range closers {
		if c == nil {
			continue
		}
		err = multierr.Append(err, c.Close())
	}
	return err
}
