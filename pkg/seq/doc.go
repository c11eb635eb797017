// Package seq provides an ordered sequence whose write access is guarded by
// a shared, irreversibly freezable flag.
//
// A Flag is a mutability cell that any number of List values may share. While
// the flag is unfrozen every list is fully mutable; the moment it freezes,
// every list sharing it becomes permanently read-only. This is how a parsed
// CSV document and all of its rows flip to immutable in one operation, and
// how a row's write permission always mirrors its document's without any
// delegation calls.
//
// Lists are not safe for concurrent mutation. Once frozen they are safe for
// unsynchronized concurrent reads.
package seq
