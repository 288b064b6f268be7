package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/emlloyd/scribe"
	"github.com/emlloyd/scribe/views"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the site config file")
	flag.Parse()

	// Secrets can live in a local .env instead of the config file.
	_ = godotenv.Load()

	cfg, err := scribe.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	app := scribe.New(cfg, views.Default(cfg))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
