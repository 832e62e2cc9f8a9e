package olc

import "github.com/paulmach/orb"

// Bound returns c as an orb.Bound, for callers already composing geometry
// with github.com/paulmach/orb (e.g. intersecting a decoded plus+code cell
// against an orb.Polygon). orb.Point is (x, y), i.e. (lng, lat); the
// conversion below follows that convention rather than (lat, lng).
//
// Complexity: O(1), no allocation.
func (c CodeArea) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.LngLo, c.LatLo},
		Max: orb.Point{c.LngHi, c.LatHi},
	}
}

// Center returns c's midpoint as an orb.Point (lng, lat), matching
// LngCenter/LatCenter's pole/antimeridian capping.
func (c CodeArea) Center() orb.Point {
	return orb.Point{c.LngCenter(), c.LatCenter()}
}
