// Command reindeer solves oriented-state mazes where a straight step is
// cheap and a 90° turn is expensive.
//
// It supports two commands:
//  1. "solve" – reads a maze from a file or stdin and prints the minimum
//     cost and the number of tiles on any optimal route.
//  2. "serve" – runs the HTTP API.
//
// Defaults come from the environment (and a .env file if present); flags
// override them.
package main

import (
	"context"
	"log"
	"os"

	"github.com/katalvlaran/reindeer/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "reindeer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	if err := newApp(cfg).Run(context.Background(), os.Args); err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
}
