// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convert

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-pixelconv/internal/workerpool"
)

// Pool is a persistent worker pool for ConvertFrame.
type Pool = workerpool.Pool

// NewPool starts a pool with the given number of workers; 0 or less uses
// GOMAXPROCS. Close it when done.
func NewPool(workers int) *Pool {
	return workerpool.New(workers)
}

// minChunkBytes is the least input a pool task converts. Frames smaller
// than two chunks are converted on the calling goroutine.
const minChunkBytes = 64 << 10

// Frame describes the rows of an image buffer. RowBytes is the input
// byte count converted per row; strides are the distances between the
// starts of consecutive rows.
type Frame struct {
	RowBytes  int
	Height    int
	InStride  int
	OutStride int
}

// Validate checks that every row of f fits in and out for p.
func (f Frame) Validate(p *Processor, in, out []byte) error {
	if f.Height < 0 || f.RowBytes < 0 {
		return errors.Errorf("convert: invalid frame %d rows of %d bytes", f.Height, f.RowBytes)
	}
	if f.RowBytes%p.srcUnit != 0 {
		return errors.Wrapf(ErrStride, "row of %d bytes is not a multiple of %d", f.RowBytes, p.srcUnit)
	}
	outRow := p.OutputSize(f.RowBytes)
	if f.InStride < f.RowBytes {
		return errors.Wrapf(ErrStride, "input stride %d is less than row size %d", f.InStride, f.RowBytes)
	}
	if f.OutStride < outRow {
		return errors.Wrapf(ErrStride, "output stride %d is less than row size %d", f.OutStride, outRow)
	}
	if f.Height == 0 {
		return nil
	}
	if need := (f.Height-1)*f.InStride + f.RowBytes; len(in) < need {
		return errors.Wrapf(ErrShortBuffer, "input holds %d bytes, frame needs %d", len(in), need)
	}
	if need := (f.Height-1)*f.OutStride + outRow; len(out) < need {
		return errors.Wrapf(ErrShortBuffer, "output holds %d bytes, frame needs %d", len(out), need)
	}
	return nil
}

// grain returns the rows per pool task for f.
func (f Frame) grain() int {
	return (minChunkBytes + f.RowBytes - 1) / max(f.RowBytes, 1)
}

// ConvertFrame converts every row of a frame. Rows are split across pool
// in ranges of at least 64 KiB of input when pool is not nil, and
// converted in order on the calling goroutine otherwise. Row conversions
// are independent, so the result is the same either way.
func ConvertFrame(p *Processor, in, out []byte, f Frame, pool *Pool) error {
	if err := f.Validate(p, in, out); err != nil {
		return err
	}
	rows := func(start, end int) {
		for y := start; y < end; y++ {
			p.fn(in[y*f.InStride:y*f.InStride+f.RowBytes], out[y*f.OutStride:y*f.OutStride+p.OutputSize(f.RowBytes)])
		}
	}
	if f.RowBytes == 0 {
		return nil
	}
	if pool == nil {
		rows(0, f.Height)
		return nil
	}
	pool.ParallelFor(f.Height, f.grain(), rows)
	return nil
}
