package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/born-ml/bhtsne/internal/config"
	"github.com/born-ml/bhtsne/internal/graphio"
	"github.com/born-ml/bhtsne/internal/tensor"
	"github.com/born-ml/bhtsne/internal/tsne"
)

// env is the state shared by a kernel command after flag parsing.
type env struct {
	log     *slog.Logger
	kernels *tsne.Kernels
}

func setup(c commonFlags, stderr io.Writer) (*env, error) {
	cfg, err := config.Load(c.config)
	if err != nil {
		return nil, err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if c.verbose {
		level = slog.LevelDebug
	}

	log := newLogger(stderr, level)
	pc := cfg.ParallelConfig()
	log.Debug("settings", "parallel", pc.Enabled, "workers", pc.NumWorkers, "min_chunk", pc.MinChunkSize)
	return &env{log: log, kernels: tsne.New(pc)}, nil
}

func runSymmetrize(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("symmetrize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c commonFlags
	c.register(fs)
	in := fs.String("in", "", "input k-NN graph")
	out := fs.String("out", "", "output symmetric graph")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(fs, "in", "out"); err != nil {
		return err
	}

	e, err := setup(c, stderr)
	if err != nil {
		return err
	}

	g, err := graphio.ReadGraph(*in)
	if err != nil {
		return err
	}
	e.log.Debug("graph loaded", "path", *in, "vertices", g.N(), "edges", g.NNZ())

	start := time.Now()
	sym, err := tsne.SymmetrizeGraph(g)
	if err != nil {
		return err
	}
	e.log.Info("symmetrized", "vertices", sym.N(), "edges", sym.NNZ(), "elapsed", time.Since(start))

	if err := graphio.WriteGraph(*out, sym); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d vertices, %d -> %d entries\n", g.N(), g.NNZ(), sym.NNZ())
	return nil
}

func runForces(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("forces", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c commonFlags
	c.register(fs)
	graphPath := fs.String("graph", "", "symmetric graph")
	embPath := fs.String("embedding", "", "embedding matrix (N×D)")
	out := fs.String("out", "", "output force matrix")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(fs, "graph", "embedding", "out"); err != nil {
		return err
	}

	e, err := setup(c, stderr)
	if err != nil {
		return err
	}

	g, err := graphio.ReadGraph(*graphPath)
	if err != nil {
		return err
	}
	emb, err := graphio.ReadMatrix(*embPath)
	if err != nil {
		return err
	}

	rowP, err := tensor.FromSlice(g.RowPointer, tensor.Shape{len(g.RowPointer)})
	if err != nil {
		return err
	}
	colP, err := tensor.FromSlice(g.ColumnIndex, tensor.Shape{len(g.ColumnIndex)})
	if err != nil {
		return err
	}
	valP, err := tensor.FromSlice(g.Value, tensor.Shape{len(g.Value)})
	if err != nil {
		return err
	}
	forces, err := tensor.NewRaw(emb.Shape(), emb.DType())
	if err != nil {
		return err
	}

	start := time.Now()
	if err := e.kernels.EdgeForces(rowP, colP, valP, g.N(), emb, forces); err != nil {
		return err
	}
	e.log.Info("edge forces", "vertices", g.N(), "dims", emb.Cols(), "elapsed", time.Since(start))

	return graphio.WriteMatrix(*out, forces)
}

func runGains(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("gains", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c commonFlags
	c.register(fs)
	gainsPath := fs.String("gains", "", "current gains")
	gradsPath := fs.String("grads", "", "gradient")
	stepsPath := fs.String("steps", "", "previous step")
	out := fs.String("out", "", "output gains")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(fs, "gains", "grads", "steps", "out"); err != nil {
		return err
	}

	e, err := setup(c, stderr)
	if err != nil {
		return err
	}

	var bufs [3]*tensor.RawTensor
	for i, p := range []string{*gainsPath, *gradsPath, *stepsPath} {
		if bufs[i], err = graphio.ReadMatrix(p); err != nil {
			return err
		}
	}

	gains := bufs[0]
	if err := e.kernels.UpdateGains(gains, bufs[1], bufs[2], gains); err != nil {
		return err
	}
	e.log.Info("gains updated", "elements", gains.NumElements())

	return graphio.WriteMatrix(*out, gains)
}
