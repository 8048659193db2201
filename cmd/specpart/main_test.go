// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specpart/graphio"
)

// barbellFile is two triangles {0,1,2} and {3,4,5} joined by the edge 2-3.
const barbellFile = "3\n0;1;2;0;1;2\n0;3;6\n0;1;2;1;2;2;3;3;4;5;4;5\n0;3;5;7;10\n"

func writeGraph(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(barbellFile), 0o644))
	return path
}

func TestRun_Bisection(t *testing.T) {
	dir := t.TempDir()
	in := writeGraph(t, dir, "graf.csrrg")

	var stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-log-level", "error", in}, &stderr))

	names := graphio.ResultNames(0).In(dir)
	res, err := graphio.LoadResult(names.Result)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Parts)
	assert.Equal(t, 1, res.EdgesCut)
	assert.Equal(t, 0.0, res.Margin)
	assert.Equal(t, 3, res.MaxVerticesPerRow)
	assert.Equal(t, []int{0, 3, 6}, res.RowStartIndices)

	labels, err := graphio.LoadAssignments(names.Assignments)
	require.NoError(t, err)
	require.Len(t, labels, 6)
	assert.Equal(t, labels[0], labels[2])
	assert.NotEqual(t, labels[2], labels[3])
}

func TestRun_BatchWithConfig(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("parts: 3\nworkers: 1\nlog:\n  level: error\n"), 0o644))

	a := writeGraph(t, dir, "graf4.csrrg")
	b := writeGraph(t, dir, "custom.csrrg")

	args := []string{"-config", cfgPath, "-p", "2", "-workers", "2", "-out", out, a, b}
	require.NoError(t, run(context.Background(), args, &bytes.Buffer{}))

	// graf4 keeps its index; the unnumbered input takes the first free one
	for _, index := range []int{4, 1} {
		res, err := graphio.LoadResult(graphio.ResultNames(index).In(out).Result)
		require.NoError(t, err, "set %d", index)
		assert.Equal(t, 2, res.Parts, "-p overrides the file")
	}
}

// TestRun_BatchSetsDoNotCollide mixes a numbered input with an unnumbered
// one whose batch position equals that number; both result sets must survive.
func TestRun_BatchSetsDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	a := writeGraph(t, dir, "graf2.csrrg")
	b := writeGraph(t, dir, "other.csrrg")
	c := writeGraph(t, dir, "third.csrrg")

	args := []string{"-log-level", "error", "-workers", "3", a, b, c}
	require.NoError(t, run(context.Background(), args, &bytes.Buffer{}))

	for _, index := range []int{2, 1, 3} {
		names := graphio.ResultNames(index).In(dir)
		_, err := graphio.LoadResult(names.Result)
		require.NoError(t, err, "set %d", index)
		labels, err := graphio.LoadAssignments(names.Assignments)
		require.NoError(t, err, "set %d", index)
		assert.Len(t, labels, 6)
	}
}

func TestAssignSets(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()

	got, err := assignSets("", []string{
		filepath.Join(dir, "x.csrrg"),
		filepath.Join(dir, "graf1.csrrg"),
		filepath.Join(other, "y.csrrg"),
		filepath.Join(dir, "graf.csrrg"),
		filepath.Join(dir, "z.csrrg"),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 1, 0, 3}, got)

	got, err = assignSets(other, []string{filepath.Join(dir, "a.csrrg"), filepath.Join(other, "b.csrrg")})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got, "-out puts every set in one directory")

	_, err = assignSets("", []string{filepath.Join(dir, "graf3.csrrg"), filepath.Join(dir, ".", "graf3.csrrg")})
	require.ErrorIs(t, err, errDuplicateSet)

	_, err = assignSets(other, []string{filepath.Join(dir, "graf3.csrrg"), filepath.Join(other, "graf3.csrrg")})
	require.ErrorIs(t, err, errDuplicateSet)

	err = run(context.Background(), []string{writeGraph(t, dir, "graf5.csrrg"), filepath.Join(dir, "graf5.csrrg")}, &bytes.Buffer{})
	require.ErrorIs(t, err, errDuplicateSet)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	in := writeGraph(t, dir, "graf.csrrg")
	ctx := context.Background()

	err := run(ctx, nil, &bytes.Buffer{})
	require.EqualError(t, err, "no input graphs")

	err = run(ctx, []string{"-h"}, &bytes.Buffer{})
	require.ErrorIs(t, err, flag.ErrHelp)

	err = run(ctx, []string{"-p", "1", in}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parts")

	err = run(ctx, []string{"-log-level", "error", "-p", "7", in}, &bytes.Buffer{})
	require.Error(t, err, "more parts than vertices")
	assert.Contains(t, err.Error(), "graf.csrrg")

	err = run(ctx, []string{filepath.Join(dir, "missing.csrrg")}, &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)
}
