// Command shadow_compare replays read-mostly requests against the legacy
// booking service and the Go service and reports where their responses
// diverge. It exits non-zero when a critical target differs.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:8000", "Legacy API base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	results := make([]comparison, 0, len(targets))
	var breaking, optional int
	for _, t := range targets {
		res := compareTarget(client, goBase, legacyBase, t)
		switch {
		case res.breaking():
			breaking++
		case res.Error != nil || !res.StatusMatch || !res.BodyMatch:
			optional++
		}
		results = append(results, res)
	}

	printReport(os.Stdout, results)
	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optional)
	if breaking > 0 {
		os.Exit(1)
	}
}
