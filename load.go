// SPDX-License-Identifier: EPL-2.0

package audproc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audproc/engine"
	"github.com/ik5/audproc/formats/aiff"
	"github.com/ik5/audproc/formats/mp3"
	"github.com/ik5/audproc/formats/vorbis"
	"github.com/ik5/audproc/formats/wav"
)

// DefaultRegistry returns a fresh registry with every built-in decoder
// registered under its usual file extensions. Callers that need more
// formats register them on the returned value without affecting other
// callers.
func DefaultRegistry() *engine.Registry {
	reg := engine.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// Load decodes a whole audio file into memory.
//
// The decoder is selected by the lowercased file extension, before the
// file is opened; an extension nobody registered fails immediately with
// ErrUnknownFormat.
//
// Returns the decoded signal and its sample rate in Hz.
func Load(path string) (*engine.Buffer, int, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, 0, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return dec.Decode(f)
}
