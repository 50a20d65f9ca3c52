// Package bond generates wall layouts for the supported masonry bond patterns.
//
// Each generator turns a desired (width, height) into a [wall.Layout]. The
// number of courses is floor(height / course height); each course is laid left
// to right from x=0, advancing by the brick width plus one head joint, and any
// leftover span becomes a final remainder brick that ends on the wall edge.
//
// # Patterns
//
// Course parity alternates the pattern every row:
//
//   - [Stretcher]: even courses start with a half brick, then full bricks;
//     odd courses are full bricks from x=0.
//   - [EnglishCross]: even courses start with a quarter brick, then half
//     bricks; odd courses are full bricks.
//   - [Flemish]: even courses alternate full/half starting full; odd courses
//     start with a half-sized leader, then alternate half/full.
//   - [Wild]: a randomized backtracking search over half, full, and
//     three-quarter bricks subject to the wild bond rules (see [Wild]).
//
// The first three are deterministic: identical inputs give identical layouts.
// Wild draws its candidate order from an injected random source, so a seeded
// source makes it reproducible too.
//
// # Dispatch
//
// [Generate] validates the dimensions, selects a generator by [Pattern], and
// reports progress through the observability generation hooks.
package bond
