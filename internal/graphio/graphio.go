// Package graphio reads and writes compressed row graphs and dense matrices
// as JSON or YAML documents.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/bhtsne/internal/tensor"
	"github.com/born-ml/bhtsne/internal/tsne"
)

// ErrUnknownFormat is returned for file extensions other than .json, .yaml and .yml.
var ErrUnknownFormat = errors.New("graphio: unknown format")

// Format selects the document encoding.
type Format int

// Supported formats.
const (
	JSON Format = iota
	YAML
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// GraphDoc is the on-disk form of a compressed row graph.
type GraphDoc struct {
	RowPointer  []int64   `json:"row_pointer" yaml:"row_pointer"`
	ColumnIndex []int64   `json:"column_index" yaml:"column_index"`
	Value       []float64 `json:"value" yaml:"value"`
}

// MatrixDoc is the on-disk form of a dense row-major matrix.
type MatrixDoc struct {
	Rows int       `json:"rows" yaml:"rows"`
	Cols int       `json:"cols" yaml:"cols"`
	Data []float64 `json:"data" yaml:"data"`
}

// Decode reads one document from r into v.
func Decode(r io.Reader, f Format, v any) error {
	switch f {
	case JSON:
		return json.NewDecoder(r).Decode(v)
	case YAML:
		return yaml.NewDecoder(r).Decode(v)
	default:
		return ErrUnknownFormat
	}
}

// Encode writes v to w as one document.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrUnknownFormat
	}
}

// ToGraph validates the document and converts it to a graph.
func (d GraphDoc) ToGraph() (tsne.Graph[int64, float64], error) {
	g := tsne.Graph[int64, float64]{RowPointer: d.RowPointer, ColumnIndex: d.ColumnIndex, Value: d.Value}
	if err := g.Validate(); err != nil {
		return g, fmt.Errorf("graph document: %w", err)
	}
	return g, nil
}

// FromGraph converts a graph to its document form.
func FromGraph(g tsne.Graph[int64, float64]) GraphDoc {
	return GraphDoc{RowPointer: g.RowPointer, ColumnIndex: g.ColumnIndex, Value: g.Value}
}

// ToRaw converts the document to a Float64 buffer of shape [Rows, Cols].
func (m MatrixDoc) ToRaw() (*tensor.RawTensor, error) {
	raw, err := tensor.FromSlice(m.Data, tensor.Shape{m.Rows, m.Cols})
	if err != nil {
		return nil, fmt.Errorf("matrix document: %w", err)
	}
	return raw, nil
}

// FromRaw converts a 2-D Float64 buffer to its document form.
func FromRaw(r *tensor.RawTensor) MatrixDoc {
	return MatrixDoc{Rows: r.Rows(), Cols: r.Cols(), Data: append([]float64(nil), r.AsFloat64()...)}
}

// ReadGraph loads a graph file.
func ReadGraph(path string) (tsne.Graph[int64, float64], error) {
	var doc GraphDoc
	if err := readFile(path, &doc); err != nil {
		return tsne.Graph[int64, float64]{}, err
	}
	return doc.ToGraph()
}

// WriteGraph stores a graph file.
func WriteGraph(path string, g tsne.Graph[int64, float64]) error {
	return writeFile(path, FromGraph(g))
}

// ReadMatrix loads a matrix file as a Float64 buffer.
func ReadMatrix(path string) (*tensor.RawTensor, error) {
	var doc MatrixDoc
	if err := readFile(path, &doc); err != nil {
		return nil, err
	}
	return doc.ToRaw()
}

// WriteMatrix stores a 2-D Float64 buffer.
func WriteMatrix(path string, r *tensor.RawTensor) error {
	return writeFile(path, FromRaw(r))
}

func readFile(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := Decode(file, f, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeFile(path string, v any) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Encode(file, f, v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
