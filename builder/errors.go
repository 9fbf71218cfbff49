// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// errors.go - sentinel errors returned by constructors.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrSlotsFull indicates a node already uses all of its neighbor slots.
var ErrSlotsFull = errors.New("builder: all neighbor slots in use")

// ErrUnknownNode indicates a link was added from a node not yet created.
var ErrUnknownNode = errors.New("builder: unknown node")
