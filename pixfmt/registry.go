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

package pixfmt

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-pixelconv"
)

// ErrUnsupportedFormat is returned for identifiers a Registry does not know.
var ErrUnsupportedFormat = errors.New("unsupported pixel format")

// Registry maps format identifiers to descriptions.
//
// A Registry is populated once, on first use, from the built-in formats
// and its native catalog. Concurrent first calls observe a single
// population; afterwards the registry is read-only and needs no locking.
// The zero value is not usable; create one with NewRegistry.
type Registry struct {
	catalog Catalog
	logger  *slog.Logger

	once       sync.Once
	byID       map[uuid.UUID]*PixelFormat
	sorted     []*PixelFormat
	catalogErr error
}

// Option configures a Registry.
type Option func(*Registry)

// WithCatalog sets the native catalog enumerated on first use.
func WithCatalog(c Catalog) Option {
	return func(r *Registry) { r.catalog = c }
}

// WithoutNativeFormats limits the registry to the built-in formats.
func WithoutNativeFormats() Option {
	return func(r *Registry) { r.catalog = nil }
}

// WithLogger sets the logger for this registry. By default the
// package-wide logger from pixelconv.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry returns a registry backed by StandardCatalog unless
// configured otherwise. Nothing is enumerated until the first lookup.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{catalog: StandardCatalog()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return pixelconv.Logger()
}

func (r *Registry) init() {
	r.once.Do(r.populate)
}

func (r *Registry) populate() {
	log := r.log()
	r.byID = make(map[uuid.UUID]*PixelFormat, len(builtins)+len(standardFormats))
	for _, f := range builtins {
		r.byID[f.id] = f
	}

	native := 0
	if r.catalog != nil {
		entries, err := r.catalog.Enumerate()
		if err != nil {
			r.catalogErr = errors.Wrap(err, "enumerating native pixel formats")
			log.Warn("pixfmt: native catalog unavailable, using built-in formats only", "error", err)
		}
		for _, e := range entries {
			if prev, ok := r.byID[e.ID]; ok {
				log.Warn("pixfmt: skipping duplicate format identifier",
					"id", e.ID, "name", e.FriendlyName, "registered", prev.name)
				continue
			}
			r.byID[e.ID] = FromNative(e)
			native++
		}
	}

	r.sorted = make([]*PixelFormat, 0, len(r.byID))
	for _, f := range r.byID {
		r.sorted = append(r.sorted, f)
	}
	slices.SortFunc(r.sorted, func(a, b *PixelFormat) int {
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		return strings.Compare(a.id.String(), b.id.String())
	})

	log.Debug("pixfmt: registry populated", "builtin", len(builtins), "native", native)
}

// ByIdentifier returns the format registered for id. Repeated calls with
// the same id return the same pointer. Unknown identifiers fail with an
// error wrapping ErrUnsupportedFormat.
func (r *Registry) ByIdentifier(id uuid.UUID) (*PixelFormat, error) {
	r.init()
	f, ok := r.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "identifier %s", id)
	}
	return f, nil
}

// MustByIdentifier is like ByIdentifier but panics on unknown identifiers.
func (r *Registry) MustByIdentifier(id uuid.UUID) *PixelFormat {
	f, err := r.ByIdentifier(id)
	if err != nil {
		panic(err)
	}
	return f
}

// Formats returns every registered format sorted by name.
func (r *Registry) Formats() []*PixelFormat {
	r.init()
	return slices.Clone(r.sorted)
}

// Len returns the number of registered formats.
func (r *Registry) Len() int {
	r.init()
	return len(r.byID)
}

// CatalogErr returns the error from native catalog enumeration, if any.
// A failed enumeration leaves the registry usable with the built-in
// formats and any entries returned alongside the error.
func (r *Registry) CatalogErr() error {
	r.init()
	return r.catalogErr
}
