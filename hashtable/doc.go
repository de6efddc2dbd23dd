// Package hashtable implements the separate-chaining hash table screen of
// dsviz: Size buckets, modulo hashing, append-at-tail chains and no resizing.
//
// Values are unique across the whole table. A value can only live in bucket
// Hash(v), so Insert walks that chain before linking; a duplicate is reported
// as "Duplicate: V already exists" without touching history.
//
// Playback replays the walk along one bucket chain; Bucket reports which
// bucket that walk belongs to so the index column can light up with it.
//
// Complexity: Insert/Remove/Find O(1 + chain length); a snapshot is O(n + Size).
package hashtable
