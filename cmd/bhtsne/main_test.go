package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/bhtsne/internal/graphio"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out, &out))
	assert.Contains(t, out.String(), version)
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, &out))
	assert.Contains(t, out.String(), "symmetrize")

	err := run([]string{"train"}, &out, &out)
	assert.ErrorContains(t, err, "unknown command")
}

func TestRun_SymmetrizeThenForces(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "knn.yaml", "row_pointer: [0, 1, 3, 3]\ncolumn_index: [1, 0, 2]\nvalue: [1, 2, 1]\n")
	cfg := writeFile(t, dir, "bhtsne.toml", "[parallel]\nenabled = false\n[log]\nlevel = \"warn\"\n")
	sym := filepath.Join(dir, "sym.json")

	var stdout, stderr bytes.Buffer
	err := run([]string{"symmetrize", "-config", cfg, "-in", in, "-out", sym}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "3 -> 4 entries")

	g, err := graphio.ReadGraph(sym)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1.5, 0.5, 0.5}, g.Value)

	emb := writeFile(t, dir, "y.json", `{"rows":3,"cols":2,"data":[0,0,1,0,2,0]}`)
	forces := filepath.Join(dir, "f.json")
	err = run([]string{"forces", "-config", cfg, "-graph", sym, "-embedding", emb, "-out", forces}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	f, err := graphio.ReadMatrix(forces)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.75, 0, 0.5, 0, 0.25, 0}, f.AsFloat64(), 1e-12)
}

func TestRun_Gains(t *testing.T) {
	dir := t.TempDir()
	gains := writeFile(t, dir, "g.json", `{"rows":1,"cols":3,"data":[1,1,0.01]}`)
	grads := writeFile(t, dir, "d.json", `{"rows":1,"cols":3,"data":[1,1,1]}`)
	steps := writeFile(t, dir, "s.json", `{"rows":1,"cols":3,"data":[-1,1,1]}`)
	out := filepath.Join(dir, "g2.yaml")

	var buf bytes.Buffer
	err := run([]string{"gains", "-gains", gains, "-grads", grads, "-steps", steps, "-out", out}, &buf, &buf)
	require.NoError(t, err, buf.String())

	g, err := graphio.ReadMatrix(out)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.2, 0.8, 0.01}, g.AsFloat64(), 1e-12)
}

func TestRun_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := run([]string{"symmetrize", "-in", "knn.json"}, &buf, &buf)
	assert.ErrorIs(t, err, errMissingFlag)

	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.json", `{"row_pointer":[0,1],"column_index":[5],"value":[1]}`)
	err = run([]string{"symmetrize", "-in", bad, "-out", filepath.Join(dir, "o.json")}, &buf, &buf)
	assert.Error(t, err)

	cfg := writeFile(t, dir, "bad.toml", "[log]\nlevel = \"loud\"\n")
	err = run([]string{"symmetrize", "-config", cfg, "-in", bad, "-out", filepath.Join(dir, "o.json")}, &buf, &buf)
	assert.ErrorContains(t, err, "log level")
}
