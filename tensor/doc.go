// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense typed buffers passed to the t-SNE kernels.
//
// # Overview
//
// A RawTensor is a contiguous row-major buffer with a Shape and a runtime
// DataType. The kernels in package tsne read and write these buffers in
// place; allocation and zeroing belong to the caller.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/bhtsne/tensor"
//	    "github.com/born-ml/bhtsne/tsne"
//	)
//
//	func main() {
//	    y, _ := tensor.NewRaw(tensor.Shape{n, 2}, tensor.Float32)
//	    forces, _ := tensor.NewRaw(tensor.Shape{n, 2}, tensor.Float32)
//	    k := tsne.New(tsne.DefaultParallelConfig())
//	    err := k.EdgeForces(rowP, colP, valP, n, y, forces)
//	}
//
// # Supported Data Types
//
//   - float32, float64 for weights, embeddings and gains
//   - int32, int64 for row pointers, column indices and degree counts
package tensor
