// Package olc implements the Open Location Code ("plus+code") codec: the
// deterministic mapping between geographic coordinates and their short
// alphanumeric code, plus the shortening and recovery operations that let a
// full code be abbreviated relative to a nearby reference point and later
// reconstructed.
//
// 🌍 What is a plus+code?
//
//	A ten-or-more character code built from a twenty-symbol alphabet that
//	names a small rectangle on the Earth's surface:
//		• Pair stage  — the first up to ten digits encode (lat, lng) as five
//		  base-20 digit pairs, each pair refining the previous cell.
//		• Grid stage  — digits eleven and beyond further refine the final
//		  0.000125° cell using a 4x5 grid, one digit per level.
//		• Separator   — a '+' marks the boundary at digit eight of every
//		  code, full or short.
//		• Shortening  — a full code within range of a known reference point
//		  can drop its leading 4, 6, or 8 characters; RecoverNearest
//		  reverses this given the same (or any sufficiently close) reference.
//
// ✨ Why this package?
//
//   - Pure – every exported function is a value transformation: no I/O, no
//     package-level mutable state, no retries.
//   - Bit-exact – accumulation order in the pair and grid stages matches the
//     reference algorithm exactly, so two independent implementations agree
//     on every boundary coordinate.
//   - Concurrency-free by construction – nothing here blocks, allocates a
//     lock, or needs a context; call any function from as many goroutines as
//     you like.
//
// Public surface:
//
//	IsValid, IsShort, IsFull   — string-only validators, never fail
//	Encode                     — (lat, lng, length) -> code
//	Decode                     — code -> CodeArea
//	Shorten                    — (full code, ref) -> short code
//	RecoverNearest             — (short code, ref) -> full code
//
// A CodeArea also exposes Bound() and Center() as github.com/paulmach/orb
// values, for callers already working in an orb-based geometry pipeline.
//
// See cmd/olc for a small command-line front end built on this package.
package olc
