// SPDX-License-Identifier: MIT

package cone

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "cone".
func tracer() tracing.Trace {
	return tracing.Select("cone")
}
