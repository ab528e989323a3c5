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

	"github.com/ajroetker/go-pixelconv"
	"github.com/ajroetker/go-pixelconv/hwy"
)

// Processor converts scanlines for one kernel. It is immutable after
// construction and safe for concurrent use on independent buffers.
type Processor struct {
	key              Key
	level            hwy.DispatchLevel
	srcUnit, dstUnit int
	reinterpret      bool
	native           bool
	fn               kernel
}

type options struct {
	level    hwy.DispatchLevel
	levelSet bool
}

// Option configures processor construction.
type Option func(*options)

// WithLevel selects the portable kernels of a specific tier instead of
// the detected ones. Portable tiers run on any processor but are slower
// than the scalar kernels; this exists for tests and benchmarks.
func WithLevel(level hwy.DispatchLevel) Option {
	return func(o *options) {
		o.level = level
		o.levelSet = true
	}
}

func buildOptions(opts []Option) options {
	o := options{level: hwy.CurrentLevel()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the processor for key. Combinations without a kernel fail
// with an error wrapping ErrUnsupportedConversion.
//
// By default the processor runs the kernel compiled for the detected tier
// when this build has one, and the scalar kernel otherwise.
func New(key Key, opts ...Option) (*Processor, error) {
	set, ok := kernels[key]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedConversion, "no kernel for %v", key)
	}
	o := buildOptions(opts)

	p := &Processor{
		key:     key,
		level:   hwy.DispatchScalar,
		srcUnit: set.srcUnit,
		dstUnit: set.dstUnit,
	}
	lanes := 0
	if o.levelSet {
		switch {
		case !set.vector || !o.level.IsVector():
		case set.wide:
			p.level, lanes = o.level, o.level.Lanes(32)
		default:
			p.level, lanes = o.level.Narrow(), alphaLanes
		}
		p.fn = set.build(lanes)
	} else if nk, ok := selectNative(key, o.level, hwy.HasFMA()); ok {
		p.level, p.native = nk.level, true
		p.fn = nk.build()
	} else {
		p.fn = set.build(0)
	}

	pixelconv.Logger().Debug("convert: processor selected",
		"key", key.String(), "level", p.level.String(), "native", p.native,
		"lanes", lanes, "forced", o.levelSet)
	return p, nil
}

// newReinterpret returns a processor that copies bytes unchanged.
func newReinterpret(bytesPerPixel int) *Processor {
	return &Processor{
		level:       hwy.DispatchScalar,
		srcUnit:     bytesPerPixel,
		dstUnit:     bytesPerPixel,
		reinterpret: true,
		fn: func(in, out []byte) {
			if !sameBuffer(in, out) {
				copy(out, in)
			}
		},
	}
}

// ConvertScanline converts cb bytes of in into out.
//
// cb must be a multiple of SrcUnit, in must hold cb bytes and out must
// hold OutputSize(cb) bytes. These are not checked outside debug builds;
// a short buffer panics with an index error.
func (p *Processor) ConvertScanline(in, out []byte, cb int) {
	debugCheck(p, in, out, cb)
	if cb <= 0 {
		return
	}
	p.fn(in[:cb], out[:p.OutputSize(cb)])
}

// ConvertScanlineChecked validates the buffers with Check before
// converting.
func (p *Processor) ConvertScanlineChecked(in, out []byte, cb int) error {
	if err := p.Check(in, out, cb); err != nil {
		return err
	}
	p.fn(in[:cb], out[:p.OutputSize(cb)])
	return nil
}

// Check reports whether a ConvertScanline call with these arguments
// meets its preconditions.
func (p *Processor) Check(in, out []byte, cb int) error {
	if cb < 0 || cb%p.srcUnit != 0 {
		return errors.Wrapf(ErrStride, "byte count %d is not a multiple of %d", cb, p.srcUnit)
	}
	if len(in) < cb {
		return errors.Wrapf(ErrShortBuffer, "input holds %d bytes, need %d", len(in), cb)
	}
	if need := p.OutputSize(cb); len(out) < need {
		return errors.Wrapf(ErrShortBuffer, "output holds %d bytes, need %d", len(out), need)
	}
	return nil
}

// OutputSize returns the number of bytes written for cb input bytes.
func (p *Processor) OutputSize(cb int) int {
	return cb / p.srcUnit * p.dstUnit
}

// Key returns the kernel key. It is the zero Key for reinterpret processors.
func (p *Processor) Key() Key { return p.key }

// Level returns the tier whose kernel the processor runs.
func (p *Processor) Level() hwy.DispatchLevel { return p.level }

// SrcUnit returns the input bytes of one processing unit.
func (p *Processor) SrcUnit() int { return p.srcUnit }

// DstUnit returns the output bytes of one processing unit.
func (p *Processor) DstUnit() int { return p.dstUnit }

// IsNative reports whether the kernel is compiled to vector instructions.
// Processors on a vector level that are not native run portable kernels.
func (p *Processor) IsNative() bool { return p.native }

// IsReinterpret reports whether the processor only copies bytes.
func (p *Processor) IsReinterpret() bool { return p.reinterpret }

func (p *Processor) String() string {
	if p.reinterpret {
		return "reinterpret"
	}
	s := p.key.String() + "@" + p.level.String()
	if p.level.IsVector() && !p.native {
		s += "(portable)"
	}
	return s
}
