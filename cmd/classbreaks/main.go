// Command classbreaks classifies a list of numbers and prints the class
// boundaries.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TrevorS/classbreaks"
	"github.com/TrevorS/classbreaks/internal/config"
	"github.com/TrevorS/classbreaks/internal/log"
	"github.com/TrevorS/classbreaks/internal/report"
	"github.com/TrevorS/classbreaks/internal/sample"
)

func main() {
	debug := hasDebugFlag(os.Args[1:])
	if err := log.Init(debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Errorw("classification failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

// run parses args, classifies the selected input and writes the report to
// stdout.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("classbreaks", flag.ContinueOnError)
	var (
		configFile = fs.String("config", "", "Path to YAML configuration file")
		method     = fs.String("method", "", "Classification method: "+methodNames())
		classes    = fs.Int("classes", 0, "Number of classes")
		input      = fs.String("input", "", "Values file, or - for standard input")
		precision  = fs.Int("precision", 0, "Decimals printed for boundaries")
		_          = fs.Bool("debug", false, "Enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
		log.Debugw("loaded configuration", "file", *configFile)
	}

	// Flags given on the command line win over the file.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "method":
			m, err := classbreaks.ParseMethod(*method)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Method = m
		case "classes":
			cfg.Classes = *classes
		case "input":
			cfg.Input = *input
		case "precision":
			cfg.Precision = *precision
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	values, err := readValues(cfg.Input, stdin)
	if err != nil {
		return err
	}
	log.Debugw("read sample", "input", cfg.Input, "n", len(values))

	res, err := classbreaks.New(cfg.Classes, values, cfg.Method)
	if err != nil {
		return err
	}
	log.Infow("classified sample",
		"method", res.Method.String(),
		"requested_classes", cfg.Classes,
		"classes", res.ClassCount,
		"n", len(values))

	return report.Render(stdout, res, values, cfg.Precision)
}

func readValues(input string, stdin io.Reader) ([]float64, error) {
	if input == "-" {
		return sample.Read(stdin)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return sample.Read(f)
}

// hasDebugFlag finds -debug before the flag set is parsed, so the logger is
// configured before run logs anything.
func hasDebugFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "-debug", "--debug", "-debug=true", "--debug=true":
			return true
		}
	}
	return false
}

func methodNames() string {
	names := make([]string, 0, len(classbreaks.Methods()))
	for _, m := range classbreaks.Methods() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}
