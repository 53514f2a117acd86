// SPDX-License-Identifier: MIT

// Package store persists named dense arrays in a single SQLite file.
//
// A store plays the role of the HDF5 files SCISSORS inputs and outputs used
// to live in: datasets such as "shape_overlap", "shape_vectors" or
// "color_projection_matrix" are kept under their names, each with its shape
// and a gonum binary payload. *DB satisfies projection.Source and
// projection.Sink, so a projection.Pipeline can read from and write to a
// store directly.
//
// CSV helpers cover plain-text import and export of a single array.
package store
