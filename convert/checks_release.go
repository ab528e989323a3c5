//go:build !pixelconv_debug

package convert

func debugCheck(*Processor, []byte, []byte, int) {}
