package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/benz9527/xavl/lib/tree"
)

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestOpsCmd(t *testing.T) {
	out, err := executeCmd(t, "ops",
		"--keys", "5,3,8,1,4,7,9",
		"--erase", "5",
		"--lower-bound", "6",
		"--find", "2",
		"--find", "7",
	)
	require.NoError(t, err)
	require.Equal(t, "erase 5: true\n"+
		"keys: [1 3 4 7 8 9]\n"+
		"size: 6 height: 3\n"+
		"lower_bound(6): 7\n"+
		"find(2): end\n"+
		"find(7): 7\n"+
		"valid: ok\n", out)
}

func TestOpsCmd_Desc(t *testing.T) {
	out, err := executeCmd(t, "ops", "--desc", "--borrow-succ", "-k", "1,2,3,3", "-e", "2,10")
	require.NoError(t, err)
	require.Contains(t, out, "erase 2: true\n")
	require.Contains(t, out, "erase 10: false\n")
	require.Contains(t, out, "keys: [3 1]\n")
	require.Contains(t, out, "valid: ok\n")
}

func TestRunOps_DuplicateLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	buf := &bytes.Buffer{}
	err := runOps(buf, zap.New(core), tree.NewAVLSet[int](), &opsArgs{
		keys: []int{2, 2, 1},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "keys: [1 2]\n")
	dups := logs.FilterMessage("duplicate key ignored").All()
	require.Len(t, dups, 1)
	require.Equal(t, int64(2), dups[0].ContextMap()["key"])
}

func TestBenchCmd(t *testing.T) {
	out, err := executeCmd(t, "bench", "-n", "1000")
	require.NoError(t, err)
	require.Contains(t, out, "n: 1000\n")
	require.Contains(t, out, "height: ")

	_, err = executeCmd(t, "bench", "-n", "0")
	require.ErrorIs(t, err, errInvalidBenchSize)
}

func TestRunBench(t *testing.T) {
	set := tree.NewAVLSet[int]()
	res, err := runBench(set, 4097)
	require.NoError(t, err)
	require.Equal(t, int64(2048), set.Len())
	require.LessOrEqual(t, float64(res.height), res.bound)
}
