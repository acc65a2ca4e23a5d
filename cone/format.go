// SPDX-License-Identifier: MIT

package cone

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/polycone/zmatrix"
)

// String renders the cone as labelled blocks:
//
//	AMBIENT_DIM
//	FACETS or INEQUALITIES
//	LINEAR_SPAN or EQUATIONS
//	RAYS and LINEALITY_SPACE (only when exact generators are cached)
//
// The labels follow the knowledge flags. Empty matrices print no rows.
func (c *Cone) String() string {
	c.ensureH()
	var b strings.Builder
	b.WriteString("AMBIENT_DIM\n")
	b.WriteString(strconv.Itoa(c.n))
	b.WriteByte('\n')

	if c.h.facetsKnown {
		b.WriteString("FACETS\n")
	} else {
		b.WriteString("INEQUALITIES\n")
	}
	writeBlock(&b, c.h.ineq)

	if c.h.impliedKnown {
		b.WriteString("LINEAR_SPAN\n")
	} else {
		b.WriteString("EQUATIONS\n")
	}
	writeBlock(&b, c.h.eq)

	if c.AreExtremeRaysKnown() {
		b.WriteString("RAYS\n")
		writeBlock(&b, c.v.rays)
		b.WriteString("LINEALITY_SPACE\n")
		writeBlock(&b, c.v.lin)
	}

	return b.String()
}

func writeBlock(b *strings.Builder, m zmatrix.ZMatrix) {
	if m.Rows() == 0 {
		return
	}
	b.WriteString(m.String())
	b.WriteByte('\n')
}
