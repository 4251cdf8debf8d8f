// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrBadConfig       = errors.New("invalid run configuration")
	ErrBadShape        = errors.New("data length must be multiple of channels")
	ErrBadRange        = errors.New("range outside the signal")
	ErrNoMainOutput    = errors.New("result is missing the main output stream")
	ErrChannelMismatch = errors.New("chunk channel count differs from the stream buffer")
)
