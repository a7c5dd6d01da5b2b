// SPDX-License-Identifier: MIT
// Package: edmindex/cmd/edmindex

// Command edmindex validates forecasting parameters and prints the library
// and prediction row-index sets they compile to.
//
// Usage:
//
//	edmindex -method simplex -lib "1 100" -pred "101 150" -E 3 -Tp 1 -columns x -target x
//	edmindex -config run.yaml -E 4 -json
//	edmindex -config run.yaml -adjust -rows 500   # also apply the post-embedding adjustment
//
// Flags given on the command line override values read from -config.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/edmindex"
	"github.com/katalvlaran/edmindex/params"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cliOptions are the flags that do not belong to Parameters.
type cliOptions struct {
	config  string
	rows    int
	adjust  bool
	asJSON  bool
	noTrace bool
}

// output is the -json document.
type output struct {
	Method       params.Method `json:"method"`
	E            int           `json:"E"`
	Knn          int           `json:"knn"`
	Library      []int         `json:"library"`
	Prediction   []int         `json:"prediction"`
	LibrarySizes []int         `json:"library_sizes,omitempty"`
	Adjusted     bool          `json:"adjusted"`
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "edmindex: ", 0)

	// First pass only locates -config so file values can seed the defaults.
	p := params.Default()
	var opts cliOptions
	if err := parseFlags(args, &p, &opts, stderr); err != nil {
		return usageError(logger, err)
	}
	if opts.config != "" {
		loaded, err := params.Load(opts.config)
		if err != nil {
			logger.Printf("load %s: %v", opts.config, err)
			return 1
		}
		p = loaded
		if err = parseFlags(args, &p, &opts, io.Discard); err != nil {
			return usageError(logger, err)
		}
	}

	var vopts []params.Option
	if !opts.noTrace {
		vopts = append(vopts, params.WithLogf(logger.Printf))
	}
	r, err := params.Validate(p, vopts...)
	if err != nil {
		logger.Printf("validate (%s): %v", edmindex.KindOf(err), err)
		return 1
	}
	if opts.adjust {
		if r, err = r.AdjustForEmbedding(opts.rows); err != nil {
			logger.Printf("adjust (%s): %v", edmindex.KindOf(err), err)
			return 1
		}
	}

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(output{
			Method:       r.Method,
			E:            r.E,
			Knn:          r.Knn,
			Library:      r.Library,
			Prediction:   r.Prediction,
			LibrarySizes: r.LibrarySizes,
			Adjusted:     r.Adjusted,
		}); err != nil {
			logger.Printf("encode: %v", err)
			return 1
		}
		return 0
	}

	fmt.Fprint(stdout, r)
	return 0
}

func usageError(logger *log.Logger, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	logger.Print(err)
	return 2
}

// parseFlags binds every flag to p and opts, whose current values become the
// flag defaults, and parses args.
func parseFlags(args []string, p *params.Parameters, opts *cliOptions, errOut io.Writer) error {
	fs := flag.NewFlagSet("edmindex", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&opts.config, "config", opts.config, "YAML or JSON parameter file")
	fs.IntVar(&opts.rows, "rows", opts.rows, "raw row count for the post-embedding adjustment (with -adjust)")
	fs.BoolVar(&opts.adjust, "adjust", opts.adjust, "apply the post-embedding adjustment")
	fs.BoolVar(&opts.asJSON, "json", opts.asJSON, "print the index sets as JSON")
	fs.BoolVar(&opts.noTrace, "quiet", opts.noTrace, "discard advisory diagnostics")

	fs.TextVar(&p.Method, "method", p.Method, "Embed, Simplex, SMap or CCM")
	fs.StringVar(&p.Lib, "lib", p.Lib, "library segments, 1-based start stop pairs")
	fs.StringVar(&p.Pred, "pred", p.Pred, "prediction segments, 1-based start stop pairs")
	fs.IntVar(&p.E, "E", p.E, "embedding dimension")
	fs.IntVar(&p.Tp, "Tp", p.Tp, "prediction horizon")
	fs.IntVar(&p.Knn, "knn", p.Knn, "nearest neighbors (0 = method default)")
	fs.IntVar(&p.Tau, "tau", p.Tau, "embedding delay")
	fs.Float64Var(&p.Theta, "theta", p.Theta, "S-Map localisation")
	fs.IntVar(&p.ExclusionRadius, "exclusion", p.ExclusionRadius, "exclusion radius")
	fs.StringVar(&p.Columns, "columns", p.Columns, "column indices or names")
	fs.StringVar(&p.Target, "target", p.Target, "target index or name")
	fs.BoolVar(&p.Embedded, "embedded", p.Embedded, "data is already embedded")
	fs.BoolVar(&p.ConstPredict, "const", p.ConstPredict, "also produce constant predictions")
	fs.BoolVar(&p.Verbose, "verbose", p.Verbose, "emit advisory diagnostics")
	fs.StringVar(&p.LibSizes, "libsizes", p.LibSizes, "CCM library sizes: start stop increment, or a list")
	fs.IntVar(&p.Samples, "samples", p.Samples, "CCM random samples per library size")
	fs.BoolVar(&p.RandomLib, "random", p.RandomLib, "CCM random library sampling")
	fs.BoolVar(&p.Replacement, "replacement", p.Replacement, "CCM sampling with replacement")
	fs.Uint64Var(&p.Seed, "seed", p.Seed, "CCM random seed (0 = time based)")
	fs.BoolVar(&p.IncludeData, "include-data", p.IncludeData, "CCM include per-sample statistics")

	return fs.Parse(args)
}
