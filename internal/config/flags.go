package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"skillup/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-s", "-t", "-d", "-l", "-subjects"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthBaseURL, "a", cfg.AuthBaseURL, "base URL of the auth service")
	fs.StringVar(&cfg.CatalogBaseURL, "b", cfg.CatalogBaseURL, "base URL of the catalog service")
	fs.StringVar(&cfg.CatalogSource, "s", cfg.CatalogSource, "catalog source (openlibrary|products)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local settings database path")
	fs.IntVar(&cfg.SubjectLimit, "l", cfg.SubjectLimit, "per-subject page size")
	timeoutSeconds := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	subjects := fs.String("subjects", "", "comma-separated catalog subjects")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSeconds) * time.Second
	if *subjects != "" {
		cfg.Subjects = strings.Split(*subjects, ",")
	}
}
