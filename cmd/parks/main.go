package main

import (
	"log"
	"os"

	"github.com/samirrijal/parkplanner/internal/adapters/catalogfile"
	"github.com/samirrijal/parkplanner/internal/adapters/cli"
	"github.com/samirrijal/parkplanner/internal/adapters/lrucache"
	"github.com/samirrijal/parkplanner/internal/pkg/config"
	"github.com/samirrijal/parkplanner/internal/pkg/logging"
)

func main() {
	cfg, err := config.Load("parks")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging goes to stderr; stdout belongs to the menu.
	logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	cache, err := lrucache.New(cfg.Cache.Size)
	if err != nil {
		log.Fatalf("cache: %v", err)
	}

	app := cli.NewApp(catalogfile.NewLoader(), cache, cfg.Metrics.Textfile)
	os.Exit(app.Run(os.Args[1:], os.Stdin, os.Stdout))
}
