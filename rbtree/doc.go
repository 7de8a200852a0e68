// Package rbtree implements a red-black tree (chapter 13).
//
// The tree keeps five properties:
//
//  1. Every node is red or black.
//  2. The root is black.
//  3. Every leaf (the sentinel) is black.
//  4. A red node has two black children.
//  5. All simple paths from a node to descendant leaves contain the same
//     number of black nodes.
//
// Together they bound the height by 2·log₂(n+1), so Put, Get and Delete are
// O(log n). All leaves and the root's parent point to a single per-tree
// sentinel node, which keeps the fixup procedures free of nil checks.
//
// Validate re-checks the properties and the search-tree ordering and is
// meant for tests.
package rbtree
