package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/raw"
	"github.com/claycot/scorecard-bridge/internal/summary"
)

// LibraryFile reads a pre-fetched scorecard-library game document from a
// configured directory. Documents follow the library's own schema
// (inning_list, top/bottom half appearance lists, box score pairs).
type LibraryFile struct {
	dir string
}

func NewLibraryFile(dir string) *LibraryFile {
	return &LibraryFile{dir: dir}
}

func (a *LibraryFile) Name() string {
	return "library_file"
}

func (a *LibraryFile) Provenance() string {
	return summary.StatusLibraryData
}

func (a *LibraryFile) Note(id gameid.ID) string {
	return fmt.Sprintf("Real data from baseball library for %s @ %s on %s",
		id.AwayCode, id.HomeCode, id.DateString())
}

func (a *LibraryFile) Fetch(ctx context.Context, id gameid.ID) (raw.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &AdapterError{Adapter: a.Name(), GameID: id.String(), Err: err}
	}

	path := filepath.Join(a.dir, id.String()+".json")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &AdapterError{Adapter: a.Name(), GameID: id.String(), Err: err}
	}
	defer f.Close()

	rec, err := raw.Decode(f)
	if err != nil {
		return nil, &AdapterError{Adapter: a.Name(), GameID: id.String(), Err: err}
	}
	return rec, nil
}
