// Command shadow_compare replays read requests against two deployments of the
// API and reports status or body differences per collection.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/exemplo/crudmongo-api/internal/models"
)

func main() {
	var (
		primaryBase string
		shadowBase  string
		prefix      string
		sample      int
		timeout     time.Duration
	)

	flag.StringVar(&primaryBase, "primary", "http://localhost:8080", "base URL of the reference deployment")
	flag.StringVar(&shadowBase, "shadow", "http://localhost:8081", "base URL of the deployment under test")
	flag.StringVar(&prefix, "prefix", "/api", "API prefix shared by both deployments")
	flag.IntVar(&sample, "sample", 20, "documents per collection compared by id")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	logr, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(2)
	}
	defer logr.Sync() //nolint:errcheck

	cmp := &comparer{
		client:  &http.Client{Timeout: timeout},
		primary: primaryBase,
		shadow:  shadowBase,
		prefix:  prefix,
		sample:  sample,
		logger:  logr,
	}

	results := cmp.Run(context.Background(), models.Collections)
	diffs := printReport(os.Stdout, results)
	if diffs > 0 {
		os.Exit(1)
	}
}
