package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xavl/lib/tree"
)

type rootOpts struct {
	trace      bool
	desc       bool
	borrowSucc bool
	logger     *zap.Logger
}

func (o *rootOpts) buildLogger() (err error) {
	cfg := zap.NewProductionConfig()
	if o.trace {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	o.logger, err = cfg.Build()
	return err
}

func (o *rootOpts) newSet() tree.AVLSet[int] {
	opts := []tree.AVLSetOpt[int]{
		tree.WithAVLSetTracer[int](o.logger),
	}
	if o.desc {
		opts = append(opts, tree.WithAVLSetDesc[int]())
	}
	if o.borrowSucc {
		opts = append(opts, tree.WithAVLSetEraseBorrowSucc[int]())
	}
	return tree.NewAVLSet[int](opts...)
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}
	rootCmd := &cobra.Command{
		Use:           "xavl",
		Short:         "Exercise and inspect the avl ordered set",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.buildLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&opts.trace, "trace", false, "log rotations and node swaps at debug level")
	rootCmd.PersistentFlags().BoolVar(&opts.desc, "desc", false, "order the keys descending")
	rootCmd.PersistentFlags().BoolVar(&opts.borrowSucc, "borrow-succ", false, "borrow the succ node first while erasing")

	rootCmd.AddCommand(
		newOpsCmd(opts),
		newBenchCmd(opts),
	)
	return rootCmd
}
