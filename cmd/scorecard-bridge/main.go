package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/claycot/scorecard-bridge/internal/adapters"
	"github.com/claycot/scorecard-bridge/internal/config"
	"github.com/claycot/scorecard-bridge/internal/enrich"
	"github.com/claycot/scorecard-bridge/internal/gameid"
	"github.com/claycot/scorecard-bridge/internal/resolve"
	"github.com/claycot/scorecard-bridge/internal/statsapi"
)

// The CLI prints exactly one JSON document to stdout. Diagnostics go to
// stderr. The only failing exit is a missing or malformed game identifier;
// every data problem past parsing degrades to fallback output instead.
func main() {
	logger := log.New(os.Stderr, "scorecard-bridge ", log.LstdFlags)

	if len(os.Args) < 2 {
		fail("No game ID provided")
	}

	id, err := gameid.Parse(os.Args[1])
	if err != nil {
		fail(err.Error())
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Error loading configuration: ", err)
	}

	client := statsapi.New(cfg.StatsAPIURL, cfg.RequestTimeout, logger)

	var chain []adapters.Adapter
	if cfg.LibraryDir != "" {
		chain = append(chain, adapters.NewLibraryFile(cfg.LibraryDir))
	}
	if cfg.LibraryURL != "" {
		chain = append(chain, adapters.NewLibraryLive(cfg.LibraryURL, cfg.RequestTimeout))
	}
	chain = append(chain, adapters.NewStatsAPI(client))

	ctx := context.Background()
	resolver := resolve.New(chain, cfg.TemplatePath, logger, nil)
	enricher := enrich.New(client, logger)

	game := enricher.Enrich(ctx, resolver.Resolve(ctx, id), id)

	body, err := game.ToJSON()
	if err != nil {
		logger.Fatal("Unable to marshal JSON: ", err)
	}
	fmt.Println(string(body))
}

func fail(reason string) {
	out, _ := json.Marshal(map[string]any{
		"error":   reason,
		"success": false,
	})
	fmt.Println(string(out))
	os.Exit(1)
}
