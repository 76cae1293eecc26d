// SPDX-License-Identifier: MIT

package photometry

import (
	"math/bits"
	"strconv"
	"strings"
)

// Flags is the per-source quality bitset of aperture photometry.
type Flags uint16

const (
	RemovedPixelInAperture Flags = 1 << iota
	InterpolatedPixelInAperture
	OutOfBounds
	SaturatedPixelInAperture
	RemovedPixelInAnnulus
	InterpolatedPixelInAnnulus
	OutOfBoundsAnnulus
	NearbySources
	NearbySourcesAnnulus
	RecenteringFailed
)

var flagNames = [...]string{
	"removed_pixel_in_aperture",
	"interpolated_pixel_in_aperture",
	"out_of_bounds",
	"saturated_pixel_in_aperture",
	"removed_pixel_in_annulus",
	"interpolated_pixel_in_annulus",
	"out_of_bounds_annulus",
	"nearby_sources",
	"nearby_sources_annulus",
	"recentering_failed",
}

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// String lists the set flags joined by "|", "none" when empty. Unknown
// bits render as "bit<n>".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	parts := make([]string, 0, bits.OnesCount16(uint16(f)))
	for i := 0; i < 16; i++ {
		if f&(1<<i) == 0 {
			continue
		}
		if i < len(flagNames) {
			parts = append(parts, flagNames[i])
		} else {
			parts = append(parts, "bit"+strconv.Itoa(i))
		}
	}

	return strings.Join(parts, "|")
}
