// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ik5/cuemix"
	"github.com/ik5/cuemix/cue"
)

func writeTable(w io.Writer, analyses []cuemix.Analysis) error {
	width := len("name")
	for _, a := range analyses {
		width = max(width, len(a.Name))
	}

	if _, err := fmt.Fprintf(w, "%-*s  %9s  %9s  %9s  %9s\n", width, "name", cue.Begin, cue.Start, cue.Next, cue.End); err != nil {
		return err
	}
	for _, a := range analyses {
		_, err := fmt.Fprintf(w, "%-*s  %9s  %9s  %9s  %9s\n", width, a.Name,
			cuemix.FormatTime(a.Cue.Begin),
			cuemix.FormatTime(a.Cue.Start),
			cuemix.FormatTime(a.Cue.Next),
			cuemix.FormatTime(a.Cue.End),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type jsonTrack struct {
	cuemix.Analysis
	Duration float64 `json:"duration"`
}

func writeJSON(w io.Writer, analyses []cuemix.Analysis) error {
	out := make([]jsonTrack, len(analyses))
	for i, a := range analyses {
		out[i] = jsonTrack{Analysis: a, Duration: a.Duration()}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
