// SPDX-License-Identifier: MIT

// Package analysis answers whole-network questions over a social.Snapshot:
// degrees of separation between two profiles and the friendship communities
// (connected components) of the network.
//
// The snapshot is loaded into a gonum simple.UndirectedGraph keyed by profile
// id; every function works on that detached copy, so callers never hold the
// network lock while an analysis runs.
//
// Determinism:
//   - Communities are returned with members ascending by id and the
//     communities themselves ordered by their smallest member id.
package analysis
