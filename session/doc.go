// Package session keeps step-through replays alive between requests.
//
// A Record is the durable part of a replay: the graph definition, the start
// node and the cursor. Step histories are never stored. The Manager rebuilds
// them by re-running the engine on the stored definition, which is
// deterministic, caches them in memory, and writes the cursor back to the
// Store after every navigation. Any Store implementation (memory, Redis) can
// therefore back a Manager in another process and resume the same replay.
package session
