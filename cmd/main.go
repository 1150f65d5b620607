package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/smhanov/xpression/query"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	// Load configuration
	cfg, err := LoadConfig(logger)
	if err != nil {
		logger.WithError(err).Error("Error loading configuration")
		os.Exit(1)
	}
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.WithFields(logrus.Fields{
		"backend":  cfg.Backend,
		"numbered": cfg.Numbered,
		"color":    cfg.Color,
	}).Debug("Configuration values")

	input, err := readInput(pflag.Args(), os.Stdin)
	if err != nil {
		logger.WithError(err).Error("Error reading filter")
		os.Exit(1)
	}
	if input == "" {
		fmt.Println("Usage: xpr [flags] EXPRESSION")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	out, err := cfg.Render(input, logger)
	if err != nil {
		fmt.Fprint(os.Stderr, query.FormatDiagnostic(input, err, cfg.Color))
		os.Exit(1)
	}
	fmt.Println(out)
}

// readInput joins the positional arguments, or reads stdin when there are
// none.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return strings.TrimSpace(string(data)), nil
}
