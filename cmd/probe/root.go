// Copyright 2025 Probekit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/probekit/probe/pkg/batch"
	"github.com/probekit/probe/pkg/metrics"
	"github.com/probekit/probe/pkg/random"
)

var (
	distName    string
	distParams  []float64
	sampleCount int
	seedFlag    string
	workers     int
	metricsBind string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:          "probe",
	Short:        "Probe draws samples from composable probability distributions.",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s, commit %s, date %s", version, commit, date)

	rootCmd.Flags().StringVar(&distName, "dist", "normal", "distribution to sample, e.g. normal, gamma, beta, zipf, poisson")
	rootCmd.Flags().Float64SliceVar(&distParams, "params", nil, "distribution parameters, positional")
	rootCmd.Flags().IntVarP(&sampleCount, "count", "n", 10000, "number of draws")
	rootCmd.Flags().StringVar(&seedFlag, "seed", "random", "seed for the draw sequence, number or 'random'")
	rootCmd.Flags().IntVar(&workers, "workers", 1, "number of parallel sampling workers")
	rootCmd.Flags().StringVar(&metricsBind, "metrics-addr", "", "expose prometheus metrics on this address, empty disables")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(crpCmd)
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func parseSeed(value string) (uint64, error) {
	if value == "random" {
		return random.NewSeed(), nil
	}
	return strconv.ParseUint(value, 10, 64)
}

func run(cmd *cobra.Command, _ []string) (err error) {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		// Sync flushes to stderr, which may be a tty that does not
		// support it; that failure is not interesting.
		_ = logger.Sync()
	}()
	zap.ReplaceGlobals(logger)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if metricsBind != "" {
		shutdown := metrics.StartMetricsServer(ctx, metricsBind)
		defer func() {
			err = multierr.Append(err, shutdown())
		}()
	}

	seed, err := parseSeed(seedFlag)
	if err != nil {
		return err
	}

	d, err := parseDistribution(distName, distParams)
	if err != nil {
		return err
	}

	logger.Info("sampling",
		zap.String("distribution", distName),
		zap.Float64s("params", distParams),
		zap.Int("count", sampleCount),
		zap.Uint64("seed", seed),
		zap.Int("workers", workers),
	)

	started := time.Now()

	var samples []float64
	if workers > 1 {
		samples, err = batch.Parallel(ctx, sampleCount, d, seed, workers)
	} else {
		samples, err = batch.N(sampleCount, d, random.NewSource(seed))
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(started)
	metrics.SamplingDuration.WithLabelValues(distName).Observe(elapsed.Seconds())

	printSummary(cmd, samples, elapsed)
	return nil
}

func printSummary(cmd *cobra.Command, samples []float64, elapsed time.Duration) {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(samples, nil)

	cmd.Printf("draws:    %d in %s\n", len(samples), elapsed)
	cmd.Printf("mean:     %g\n", mean)
	cmd.Printf("stddev:   %g\n", std)
	if len(sorted) > 0 {
		cmd.Printf("min/max:  %g / %g\n", sorted[0], sorted[len(sorted)-1])
		for _, q := range []float64{0.05, 0.5, 0.95} {
			cmd.Printf("p%02.0f:      %g\n", q*100, stat.Quantile(q, stat.Empirical, sorted, nil))
		}
	}
}
