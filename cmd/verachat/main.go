// Package main provides the interactive console harness for the VERA
// model wrapper.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/verahq/verachat/pkg/chat"
	loggerpkg "github.com/verahq/verachat/pkg/logger"
	"github.com/verahq/verachat/pkg/vera"
)

// main is the program entry point.
func main() {
	cfg, err := parseCLIConfig()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	ctx := context.Background()

	wrapper, err := vera.New(ctx, cfg, vera.WithLogger(appLogger))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := chat.NewSession(wrapper,
		chat.WithLogger(appLogger),
		chat.WithVerbose(cfg.Verbose),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := session.Run(ctx, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
