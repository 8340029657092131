// Package core defines the shared vocabulary of the Talenta engine: sessions,
// conversation turns, tool calls, operation and artifact kinds, and the store
// interfaces that the orchestration layers depend on. It contains no business
// logic and no external service clients; higher-level packages (catalog,
// dispatch, orchestrator, gateway) build on these types.
package core
