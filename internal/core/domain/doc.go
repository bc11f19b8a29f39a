// Package domain defines the core business entities for docrec.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A row of the document table
//   - Corpus: The document table together with its similarity matrix
//   - SimilarityMatrix: Pairwise similarity scores aligned with the table
//   - RecommendationSet: The top, medium and diverse bands for one request
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
