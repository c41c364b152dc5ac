// Package fixtures collects the open-graph instances referenced by
// spec.md §8's "Concrete end-to-end scenarios" and a random open-graph
// generator for the property tests in §8's "Universal invariants".
//
// The concrete scenarios are hand-built and hand-verified (there is no
// portable equivalent of original_source/src/pflow.rs's test_utils::
// CASEn graphs in the retrieval pack, so these are new fixtures in the
// same spirit: small, fully worked-out open graphs). The random
// generator is grounded on the teacher's builder.RandomSparse
// (Erdős–Rényi-style independent-probability sampling over unordered
// pairs), adapted from building a core.Graph via AddVertex/AddEdge and
// a pluggable weight function to building a core.Graph over a fixed
// dense vertex range plus an I/O split and a plane assignment.
package fixtures
