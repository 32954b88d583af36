// Package shader holds the WGSL program that evaluates clip masks on the
// GPU and compiles it to SPIR-V.
package shader

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

//go:embed clip_mask.wgsl
var clipMaskWGSL string

// ErrInvalidSPIRV is returned when the compiler output is not a whole
// number of 32-bit words.
var ErrInvalidSPIRV = errors.New("shader: SPIR-V output is not word aligned")

// ClipMaskSource returns the WGSL source of the clip mask shader.
func ClipMaskSource() string {
	return clipMaskWGSL
}

var compileClipMask = sync.OnceValues(func() ([]uint32, error) {
	return CompileToSPIRV(clipMaskWGSL)
})

// CompileClipMask compiles the clip mask shader once and returns the
// cached SPIR-V words.
func CompileClipMask() ([]uint32, error) {
	return compileClipMask()
}

// CompileToSPIRV compiles WGSL source to SPIR-V words.
func CompileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, ErrInvalidSPIRV
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
