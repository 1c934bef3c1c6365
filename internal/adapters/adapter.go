// Package adapters contains the source adapters the fallback chain tries in
// priority order. Each adapter knows how to retrieve one producer's view of
// a game and return it as a raw record; partial or missing fields inside a
// successful fetch are never an error here.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/raw"
)

// ErrNotFound reports that the source has no record of the requested game.
// The controller treats it as a clean miss and moves on.
var ErrNotFound = errors.New("game not found")

// AdapterError wraps a total fetch failure: network error, timeout, or an
// unparseable envelope. Recoverable; the controller logs it and moves on.
type AdapterError struct {
	Adapter string
	GameID  string
	Err     error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("adapter %s: game %s: %v", e.Adapter, e.GameID, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// Adapter retrieves raw game data from one producer.
type Adapter interface {
	// Name identifies the adapter in logs and metrics.
	Name() string
	// Provenance is the integration status tag stamped on records this
	// adapter produced.
	Provenance() string
	// Fetch returns the producer's record for the game, ErrNotFound when the
	// producer has none, or an AdapterError on total failure.
	Fetch(ctx context.Context, id gameid.ID) (raw.Record, error)
	// Note describes the record's origin for the output's note field.
	Note(id gameid.ID) string
}
