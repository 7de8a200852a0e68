// Package bst implements an unbalanced binary search tree with parent links
// (chapter 12).
//
// Keys are ordered with cmp.Compare. Put replaces the value of an existing
// key; Delete uses TRANSPLANT to splice nodes out. Every operation runs in
// O(h), where h is the height of the tree: O(log n) for random insertion
// orders, O(n) for sorted ones. See package rbtree for a balanced variant.
package bst
