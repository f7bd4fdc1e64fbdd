// Package coursetree provides the ordered catalog: a binary search tree of
// course records keyed by course code.
//
// # Ordering
//
// Keys are compared with plain byte-wise string comparison, so "CS100" sorts
// before "CS20" and before "cs100". Callers normalize codes before inserting
// or looking up; the tree itself is an exact-match store.
//
// # Balance
//
// The tree is not self-balancing. Sorted input degrades it into a list and
// lookups become linear. Every walk is iterative, either a loop down one
// path or an explicit stack for the in-order traversal, so a degenerate tree
// costs time but never call-stack depth.
//
// # Ownership
//
// Records are copied on the way in and on the way out. Nothing a caller holds
// aliases the tree's storage.
package coursetree
