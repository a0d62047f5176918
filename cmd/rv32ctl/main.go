// Command rv32ctl runs the control API server: a JSON/HTTP surface
// for creating sandboxed engine sessions and driving them remotely
// (load, step, run, inspect).
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rv32sandbox/emu/control"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		port        = flag.Int("port", 8090, "Control API port")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("rv32ctl %s (commit %s, built %s)\n", Version, Commit, Date)
		os.Exit(0)
	}

	server := control.NewServer(*port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	shutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("shutting down control API server...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "error during shutdown: %v\n", err)
				os.Exit(1)
			}
		})
	}

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "control API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	shutdown()
}
