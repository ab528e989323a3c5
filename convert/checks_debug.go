//go:build pixelconv_debug

package convert

// debugCheck turns contract violations into panics with a description of
// the violated precondition.
func debugCheck(p *Processor, in, out []byte, cb int) {
	if err := p.Check(in, out, cb); err != nil {
		panic(err)
	}
}
