// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"context"
	"fmt"
	"os"

	"github.com/ik5/cuemix/audio"
	"github.com/ik5/cuemix/cue"
	"github.com/ik5/cuemix/formats/vorbis"
)

// Example decodes an Ogg Vorbis file and finds its cue points.
func Example() {
	f, err := os.Open("input.ogg")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	buf, err := audio.Decode(vorbis.Decoder{}, f)
	if err != nil {
		fmt.Println(err)
		return
	}

	p, err := cue.Compute(context.Background(), buf, cue.DefaultSettings())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("start %.2fs, next %.2fs\n", p.Start, p.Next)
}
