// SPDX-License-Identifier: MIT

// Package interp is a small command language over cones.
//
// Values are dynamically typed (Kind). Every command name maps to a closed
// set of overloads, each with a fixed argument signature and a strongly typed
// body in package cone or codec; Call picks the first overload whose
// signature the arguments fit. A vector fits a matrix parameter as a one-row
// matrix and a one-row matrix fits a vector parameter.
//
// Statements:
//
//	c = coneViaInequalities([[1,0],[0,1]])
//	cone d = 3            // the cone {0} in dimension 3
//	dimension(c & d)      // & intersects, | takes the hull, == compares
//
// A failed statement leaves the environment as it was and returns an error;
// the caller may go on evaluating.
package interp
