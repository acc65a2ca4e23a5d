// SPDX-License-Identifier: MIT

package ddm

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "ddm".
func tracer() tracing.Trace {
	return tracing.Select("ddm")
}
