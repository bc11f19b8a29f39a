// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentLoader: Reads the document table (CSV or SQLite)
//   - SimilarityBuilder: Turns document texts into a similarity matrix (TF-IDF)
//   - TextStore: Canonical text used for snippets, keyed by document ID
//   - Sampler: Source of randomness for the medium and diverse bands
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - MatrixStore: Similarity matrix cache. Without it every load re-vectorises.
//   - DocumentStore: Persists the document table for later SQLite loads.
//   - FileWatcher: Reloads the corpus when its file changes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or analyser package
package driven
