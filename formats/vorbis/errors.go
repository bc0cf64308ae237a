// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrInvalidStream indicates data that is not a decodable Ogg Vorbis stream.
var ErrInvalidStream = errors.New("invalid Ogg Vorbis stream")
