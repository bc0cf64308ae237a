// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrInvalidStream indicates data go-mp3 cannot decode.
var ErrInvalidStream = errors.New("invalid MP3 stream")
