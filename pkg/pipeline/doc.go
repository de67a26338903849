// Package pipeline provides a small dependency-ordered task runner.
//
// Tasks are registered explicitly against a Pipeline and may declare at most
// one dependency, the typed handle of a previously registered task. Run
// executes every registered task exactly once, in an order where a task never
// runs before the task whose output it consumes, threading each task's return
// value into its dependents. The results of a run are collected in a result
// table keyed by task identity.
//
// The runner is deliberately synchronous: tasks execute sequentially, one at
// a time, and the first failing task aborts the whole run. There is no retry,
// no timeout and no partial-result contract.
package pipeline
