// Package plan computes the order in which the bricks of a wall are laid.
//
// # Overview
//
// A [Plan] is a sequence of [Placement]s. Constrained planners group bricks
// into strides: discrete time steps in which several bricks may be placed
// together. Three strategies are provided, all implementing [Planner]:
//
//   - [Naive] emits the layout order and assigns no strides. It ignores
//     support and reach entirely.
//   - [Sweep] moves a single build envelope across the wall, bouncing between
//     the edges and climbing when the lower part of the envelope runs out of
//     work.
//   - [Greedy] scores every station from [reach.Stations] by the bricks it can
//     place now, the best follow-up from any station, and the travel distance
//     from the previous station, and commits the best one each stride.
//
// # Saturation
//
// Sweep and Greedy share one rule for what a station can place: repeatedly
// take every reachable, unplaced brick whose supports are placed, until no
// more qualify. A brick and the bricks resting on it can therefore share a
// stride, but a brick is never placed before its supports.
//
// # Incomplete plans
//
// Running out of budget is not an error. The plan carries a [Status] and the
// bricks placed so far; use [Plan.Complete] to tell whether every brick made
// it. Errors are reserved for invalid input: a layout that fails
// [wall.Layout.Validate] is rejected with code INVALID_LAYOUT before any
// planning starts.
//
// # Observability
//
// Planners never log. Progress is reported through
// [observability.Planning] so callers can attach logging or metrics.
package plan
