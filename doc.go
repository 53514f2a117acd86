// Package scissors estimates molecular similarities from a small basis of
// reference molecules: SCISSORS (SCalable In Silico Screening with
// Orthogonal Reduced Similarity Spaces) turns a basis-vs-basis similarity
// matrix into a spectral projection, embeds any molecule by its similarities
// to the basis, and recovers Tanimoto estimates from the embedded vectors.
//
// 🚀 What is inside?
//
//	matrix/        dense matrices, validators, centering, eigensolvers
//	projection/    eigenpair selection, embedding, vector Tanimoto
//	basis/         reproducible basis sampling and kernel slicing
//	store/         named arrays in SQLite, CSV import/export
//	cmd/scissors/  command-line front end
//
// Quick example:
//
//	model, _ := projection.New(bb)                     // n×n basis kernel
//	sim, _ := model.Similarity(lb, nil, projection.AllDims) // m×m Tanimotos
//
// The projection keeps eigenpairs with positive eigenvalues by default;
// WithImaginary keeps negative ones too, as imaginary dimensions.
//
//	go get github.com/katalvlaran/scissors
package scissors
