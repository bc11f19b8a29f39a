// Package tfidf builds document similarity matrices from TF-IDF vectors.
//
// Terms come from an analyser pipeline. Terms are pruned by document
// frequency, weighted with smoothed inverse document frequency, and each
// document vector is L2-normalised, so the cosine similarity of two documents
// is the dot product of their vectors.
package tfidf
