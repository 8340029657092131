// Package session implements core.SessionStore: a volatile in-memory store
// for tests and demos. A durable libsql-backed store lives in the
// persistence package.
package session
