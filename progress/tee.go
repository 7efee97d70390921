// SPDX-License-Identifier: MIT

package progress

import "github.com/katalvlaran/crs/iterative"

// Tee returns a Reporter forwarding every report to each non-nil sink, in order.
func Tee(sinks ...iterative.Reporter) iterative.Reporter {
	out := make([]iterative.Reporter, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return iterative.ReporterFunc(func(p iterative.Progress) {
		for _, s := range out {
			s.Report(p)
		}
	})
}
