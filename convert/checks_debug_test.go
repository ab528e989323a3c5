//go:build pixelconv_debug

package convert

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDebugCheckPanics(t *testing.T) {
	p := mustNew(t, Key{UQ15, Byte, Opaque, FromLinear})
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrStride) {
			t.Errorf("recovered %v, want ErrStride", err)
		}
	}()
	p.ConvertScanline(make([]byte, 8), make([]byte, 4), 3)
}
