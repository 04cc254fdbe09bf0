// Package search defines the shared contract every Rush Hour search
// strategy (bfs, dfs, ids, ucs, astar) implements: a Strategy interface
// exposing Solve and Stats, a Solution/Stats value pair, the solver state
// machine, and the two-pass timing/memory instrumentation contract.
//
// Two-pass instrumentation. To prevent a memory profiler from distorting
// timing and node-count figures, every strategy runs its internal search
// twice: once with profiling off (to record wall time and nodes expanded),
// once with profiling on (to record peak memory via a runtime.MemStats
// delta). Run runs exactly this contract around a caller-supplied search
// body and is the one place this bookkeeping is implemented, so BFS/DFS/
// IDS/UCS/A* need only provide the body.
package search
