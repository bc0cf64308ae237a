// SPDX-License-Identifier: EPL-2.0

package cuemix

import "errors"

// ErrUnsupportedFormat is returned for files no registered decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported audio format")
