// Package artifact implements session-scoped artifact storage: an in-memory
// store for tests and single-process deployments, and a JSON codec with an
// explicit per-kind decode table used by the persistent store.
package artifact
