// Package library owns persisted movie collections partitioned by user.
//
// A Store exposes the user registry and the per-user movie operations. Two
// implementations exist: a durable sqlite store and an in-memory store with
// process-lifetime durability. Both honor the same contracts; the backend is
// selected by configuration. Every write is a single atomic statement, and
// reads return detached copies that never alias persisted state.
package library
