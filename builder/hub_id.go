// SPDX-License-Identifier: MIT
// Package: ibex/builder
//
// hub_id.go - shared hub-vertex identifier for centered topologies.

package builder

// centerVertexID is a fixed, documented hub ID used by Star and Wheel.
const centerVertexID = "Center"
