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
	"context"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/probekit/probe/pkg/batch"
	"github.com/probekit/probe/pkg/crp"
	"github.com/probekit/probe/pkg/random"
)

var (
	crpConcentrations []float64
	crpCustomers      int
	crpSeed           string
)

var crpCmd = &cobra.Command{
	Use:   "crp",
	Short: "Draw Chinese Restaurant Process partitions for a sweep of concentrations.",
	RunE:  runCRP,
}

func init() {
	crpCmd.Flags().Float64SliceVar(&crpConcentrations, "concentrations", []float64{0.5, 1, 5}, "concentration parameters to sweep")
	crpCmd.Flags().IntVar(&crpCustomers, "customers", 100, "customers to seat per partition")
	crpCmd.Flags().StringVar(&crpSeed, "seed", "random", "seed for the draw sequences, number or 'random'")
}

func runCRP(cmd *cobra.Command, _ []string) error {
	if len(crpConcentrations) == 0 {
		return errors.New("at least one concentration is required")
	}

	seed, err := parseSeed(crpSeed)
	if err != nil {
		return err
	}

	pool := batch.NewPool(len(crpConcentrations))
	defer pool.Close()

	channels := make([]chan mo.Result[any], len(crpConcentrations))
	for i, a := range crpConcentrations {
		src := random.NewSource(seed + uint64(i))
		partition := crp.New(a, crpCustomers)

		channels[i] = pool.Send(cmd.Context(), func(context.Context) (any, error) {
			return partition.Sample(src)
		})
	}

	for i, ch := range channels {
		result := <-ch
		pool.Release(ch)

		counts, err := result.Get()
		if err != nil {
			return errors.Wrapf(err, "concentration %v", crpConcentrations[i])
		}

		cmd.Printf("a=%-8g tables=%-5d counts=%v\n",
			crpConcentrations[i], len(counts.([]int)), counts)
	}

	return nil
}
