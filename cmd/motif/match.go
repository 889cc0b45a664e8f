package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/motif/gen"
	"github.com/katalvlaran/motif/match"
)

// newMatchCmd wires the generate-extract-match pipeline.
func newMatchCmd(verbose *bool) *cobra.Command {
	var (
		vertices  int
		prob      float64
		labels    int
		querySize int
		seed      int64
		limit     int
		check     int
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Sample a random graph and enumerate embeddings of an extracted query",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)

			logger.Debug("sampling data graph", "vertices", vertices, "p", prob, "labels", labels, "seed", seed)
			g, err := gen.RandomGraph(vertices, prob, labels, gen.WithSeed(seed))
			if err != nil {
				return fmt.Errorf("generate data graph: %w", err)
			}
			logger.Info("data graph ready", "vertices", g.Order(), "arcs", g.Size())

			q, err := gen.ExtractQuery(g, querySize, gen.WithSeed(seed+1))
			if err != nil {
				return fmt.Errorf("extract query: %w", err)
			}
			logger.Info("query extracted", "vertices", q.Order(), "arcs", q.Size())

			m, err := match.NewMatcher(q, g,
				match.WithLimit(limit),
				match.WithCheckEvery(check),
				match.WithProgressLogger(logger),
			)
			if err != nil {
				return fmt.Errorf("build matcher: %w", err)
			}

			start := time.Now()
			res := m.Result()
			logger.Info("search finished",
				"bijections", len(res.Bijections),
				"truncated", res.Truncated,
				"elapsed", time.Since(start).Round(time.Millisecond),
			)

			for u, set := range m.Mappings() {
				logger.Debug("merged mapping", "query_vertex", u, "mates", set.GetCardinality())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d embeddings (truncated=%v)\n", len(res.Bijections), res.Truncated)

			return nil
		},
	}

	cmd.Flags().IntVarP(&vertices, "vertices", "n", 200, "data graph order")
	cmd.Flags().Float64VarP(&prob, "prob", "p", 0.05, "edge probability")
	cmd.Flags().IntVar(&labels, "labels", 4, "label alphabet size")
	cmd.Flags().IntVarP(&querySize, "query-size", "q", 3, "query pattern order")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&limit, "limit", match.DefaultLimit, "maximum bijections to collect")
	cmd.Flags().IntVar(&check, "check", match.DefaultCheckEvery, "progress report interval")

	return cmd
}
