// Package graph provides the mutable node graph at the heart of the shader
// editor: typed nodes with fixed input/output pin slots, bidirectional links,
// and the per-stage collections that own node lifetime.
//
// # Overview
//
// A [Node] carries a session-unique integer ID, a kind, a canvas position,
// and one slot per pin. Each slot holds at most one non-owning reference to a
// neighbor node; the reciprocal pin index on the neighbor is derived by a
// linear scan of its slot array. Graphs are small, so the scan keeps links
// free of auxiliary indices that could drift out of sync.
//
// # Invariants
//
// Links are always bidirectional: if input slot i of node A references B,
// exactly one output slot of B references A. [Connect], [Disconnect], and
// [Graph.Remove] maintain this symmetry; a one-sided reference never survives
// a mutating call. Links never cross stage graphs.
//
// Pin indices outside a kind's fixed arity are programmer errors and panic.
// Recoverable conditions (a missing node during stale-history replay) are
// reported through nil results instead.
package graph
