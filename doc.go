// Package kcluster is your in-memory toolkit for maximum-spacing
// k-clustering: greedy single-link clustering over explicit distance
// lists and over implicit Hamming space, built on one shared
// disjoint-set core.
//
// 🚀 What is kcluster?
//
//	A small, focused library that brings together:
//		• Disjoint-set core: path compression + union by size, live set count
//		• Explicit model: sorted edge scan, stop at k clusters, report the spacing
//		• Implicit model: bit-vector index + bounded-distance neighbor enumeration
//		• Loaders: plain-text edge lists and 0/1 matrices, strictly validated
//
// ✨ Why choose kcluster?
//
//   - Predictable - every merge is a documented invariant, every failure a sentinel error
//   - Never all-pairs - the implicit model probes C(L,d) candidates per vector, not M²
//   - Tunable - functional options select enumeration method, workers and tracing
//   - Pure data in, numbers out - no global state, no hidden I/O
//
// Under the hood, everything is organized under four subpackages:
//
//	dsu/     - disjoint-set (union-find) with Find/Union/Count and range errors
//	spacing/ - explicit-distance engine: MaxSpacing over an edge list
//	hamming/ - implicit-distance engine: Vector, Clustering, MaxClusters
//	dataset/ - text-file loaders for both input formats
//
// Quick ASCII example:
//
//	    a──1──b        k=2 keeps {a,b} and {c} apart;
//	     \    │        the spacing is 2, the cheapest
//	      3   2        edge between the two clusters.
//	       \  │
//	        \ c
//
// Dive into the subpackage docs for the full API, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/kcluster
package kcluster
