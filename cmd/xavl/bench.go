package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benz9527/xavl/lib/tree"
)

var errInvalidBenchSize = errors.New("bench size must be positive")

type benchResult struct {
	n          int
	insert     time.Duration
	lowerBound time.Duration
	erase      time.Duration
	height     int
	bound      float64
}

func newBenchCmd(opts *rootOpts) *cobra.Command {
	n := 0
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure insert, lower bound and erase over N shuffled keys",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n <= 0 {
				return fmt.Errorf("%w: %d", errInvalidBenchSize, n)
			}
			set := opts.newSet()
			defer set.Release()
			res, err := runBench(set, n)
			if err != nil {
				opts.logger.Error("bench failed", zap.Error(err))
				return err
			}
			opts.logger.Info("bench finished",
				zap.Int("n", res.n),
				zap.Duration("insert", res.insert),
				zap.Duration("lowerBound", res.lowerBound),
				zap.Duration("erase", res.erase),
			)
			printBench(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 100000, "number of keys")
	return cmd
}

func measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

func runBench(set tree.AVLSet[int], n int) (benchResult, error) {
	keys := lo.Shuffle(lo.Range(n))
	res := benchResult{n: n}

	res.insert = measure(func() {
		for _, key := range keys {
			set.Insert(key)
		}
	})
	res.height = set.Height()
	res.bound = tree.AVLHeightBound(set.Len())

	res.lowerBound = measure(func() {
		for _, key := range keys {
			set.LowerBound(key)
		}
	})

	// Erase the even keys only, the tree is still validated after.
	res.erase = measure(func() {
		for _, key := range keys {
			if key&1 == 0 {
				set.Erase(key)
			}
		}
	})
	if expected := int64(n / 2); set.Len() != expected {
		return res, fmt.Errorf("%w: len %d after erasing, expected %d", tree.ErrAVLSizeViolation, set.Len(), expected)
	}
	return res, tree.AVLValidate(set)
}

func printBench(out io.Writer, res benchResult) {
	_, _ = fmt.Fprintf(out, "n: %d\n", res.n)
	_, _ = fmt.Fprintf(out, "insert: %s\n", res.insert)
	_, _ = fmt.Fprintf(out, "lower_bound: %s\n", res.lowerBound)
	_, _ = fmt.Fprintf(out, "erase: %s\n", res.erase)
	_, _ = fmt.Fprintf(out, "height: %d bound: %.3f\n", res.height, res.bound)
}
