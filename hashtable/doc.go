// Package hashtable implements the hash tables of chapter 11: collision
// resolution by chaining and by open addressing.
//
// What:
//
//   - Hash functions: Division (k mod m) and Multiplication (Knuth's
//     fixed-point method with A = (√5−1)/2), plus ready-made Hashers for
//     strings (xxHash64) and integers.
//   - Chained: every slot holds a singly linked list; new keys are inserted
//     at the head of their chain.
//   - Open: all entries live in the slot array; collisions are resolved with
//     linear, quadratic (triangular) or double hashing. Deleted slots become
//     tombstones so that probe sequences running through them stay intact.
//
// Table sizes are kept at powers of two. Both tables double and rehash when
// the load factor α = n/m would exceed the configured maximum; Open can be
// pinned to its initial size with WithoutGrowth, in which case inserting into
// a full table returns ErrTableFull.
//
// Complexity (simple uniform hashing):
//
//   - Chained: Θ(1+α) expected per operation.
//   - Open: at most 1/(1−α) expected probes for an unsuccessful search.
//
// Neither table is safe for concurrent use.
package hashtable
