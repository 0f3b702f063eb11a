// Package score holds the pure scoring domain: serve-possession
// reconstruction, current-set detection, federation classification, and
// focus selection. Nothing in this package performs I/O or owns long-lived
// state beyond the values it returns.
//
// # Serve reconstruction
//
// The feed never says who serves. Rally-point volleyball makes the serve
// holder fully recoverable from point deltas:
//
//	prior        | scorer     | next              | play label
//	-------------+------------+-------------------+-------------------
//	Unknown      | none       | Unknown           | none
//	Unknown      | S          | Serving{S, cold}  | none (baseline)
//	Serving{S,·} | S (same)   | Serving{S, hot}   | {S, break-point}
//	Serving{S,·} | O (other)  | Serving{O, cold}  | {O, side-out}
//	any          | none       | unchanged         | none
//
// Advance implements exactly this table and is the machine's only entry
// point. Serve is a tagged variant so "hot with no side" cannot exist.
//
// # Current set
//
// CurrentPoints scans set slots from the highest index downward and stops at
// the first slot with any non-null value. Scoring comparisons always run
// against the previous cycle's current pair, so a set transition (new slot
// opens with low values) never reads as a score: the new values are not
// greater than the old set's finals.
//
// # Classification
//
// Classify resolves both foreign team ids against the roster index and
// buckets the match as federation, abroad, or other. It runs fresh every
// poll because the roster arrives on an independent timer.
package score
