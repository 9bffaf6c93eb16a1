package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benz9527/xavl/lib/tree"
)

type opsArgs struct {
	keys        []int
	erase       []int
	lowerBounds []int
	finds       []int
}

func newOpsCmd(opts *rootOpts) *cobra.Command {
	args := &opsArgs{}
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Insert and erase keys, then run lookups against the set",
		Example: `  xavl ops --keys 5,3,8,1,4,7,9 --erase 5 --lower-bound 6 --find 2
  xavl ops --keys 1,2,3 --desc --trace`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set := opts.newSet()
			defer set.Release()
			return runOps(cmd.OutOrStdout(), opts.logger, set, args)
		},
	}
	cmd.Flags().IntSliceVarP(&args.keys, "keys", "k", nil, "keys to insert, in order")
	cmd.Flags().IntSliceVarP(&args.erase, "erase", "e", nil, "keys to erase after the insertion, in order")
	cmd.Flags().IntSliceVar(&args.lowerBounds, "lower-bound", nil, "lower bound queries")
	cmd.Flags().IntSliceVar(&args.finds, "find", nil, "find queries")
	return cmd
}

func runOps(out io.Writer, logger *zap.Logger, set tree.AVLSet[int], args *opsArgs) error {
	for _, key := range args.keys {
		if !set.Insert(key) {
			logger.Info("duplicate key ignored", zap.Int("key", key))
		}
	}
	for _, key := range args.erase {
		_, _ = fmt.Fprintf(out, "erase %d: %t\n", key, set.Erase(key))
	}

	_, _ = fmt.Fprintf(out, "keys: %v\n", slices.Collect(set.All()))
	_, _ = fmt.Fprintf(out, "size: %d height: %d\n", set.Len(), set.Height())
	for _, key := range args.lowerBounds {
		_, _ = fmt.Fprintf(out, "lower_bound(%d): %s\n", key, iteratorString(set.LowerBound(key)))
	}
	for _, key := range args.finds {
		_, _ = fmt.Fprintf(out, "find(%d): %s\n", key, iteratorString(set.Find(key)))
	}

	if err := tree.AVLValidate(set); err != nil {
		logger.Error("avl set violation", zap.Error(err))
		return err
	}
	_, _ = fmt.Fprintln(out, "valid: ok")
	return nil
}

func iteratorString(it tree.AVLIterator[int]) string {
	if it.IsEnd() {
		return "end"
	}
	return fmt.Sprint(it.Key())
}
