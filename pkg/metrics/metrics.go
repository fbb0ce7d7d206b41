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

package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registerer = prometheus.NewRegistry()

var (
	SamplesDrawn = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "samples_drawn",
			Help: "Number of completed sample draws.",
		},
		[]string{"driver"},
	)

	ZipfRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "zipf_rejections",
			Help: "Rejected proposals in the zipf rejection loop.",
		},
	)

	AliasTablesBuilt = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alias_tables_built",
			Help: "Alias tables constructed for poisson draws.",
		},
	)

	SamplingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sampling_duration_seconds",
			Help:    "Time taken to complete a batch of draws.",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"distribution"},
	)
)

func init() {
	registerer.MustRegister(
		SamplesDrawn,
		ZipfRejections,
		AliasTablesBuilt,
		SamplingDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// StartMetricsServer exposes the registry on bind until ctx is done.
func StartMetricsServer(ctx context.Context, bind string) func() error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.InstrumentMetricHandler(
		registerer, promhttp.HandlerFor(registerer, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			Registry:          registerer,
		}),
	))

	server := &http.Server{
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		WriteTimeout: 1 * time.Minute,
		Handler:      mux,
		Addr:         bind,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(errors.Wrapf(err, "failed to start metrics server on %s", bind))
		}
	}()

	return func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
