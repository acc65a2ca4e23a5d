// SPDX-License-Identifier: MIT

package interp

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "interp".
func tracer() tracing.Trace {
	return tracing.Select("interp")
}
