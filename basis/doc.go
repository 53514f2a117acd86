// SPDX-License-Identifier: MIT

// Package basis picks the basis subset of a SCISSORS model and slices
// kernel matrices accordingly.
//
// A basis is a sample of n objects drawn without replacement from a library
// of N objects. The size is a proportion in (0, 1] or an integral count in
// (1, N]. Given the full N×N inner-product matrix, Split returns the two
// inputs a projection.Model needs:
//
//	bb = all[idx][:, idx]   // basis × basis kernel
//	lb = all[:, idx]        // library × basis inner products
//
// Sampling is reproducible with WithSeed, and sampled indices are always
// returned sorted ascending.
package basis
