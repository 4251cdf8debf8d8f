// SPDX-License-Identifier: EPL-2.0

package audproc

import "errors"

var (
	// ErrSameFile rejects processing a file onto itself.
	ErrSameFile = errors.New("input and output are the same file")

	// ErrUnknownFormat reports a file whose format has no registered
	// decoder.
	ErrUnknownFormat = errors.New("no decoder registered for format")
)
