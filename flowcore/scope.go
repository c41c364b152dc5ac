package flowcore

import "github.com/katalvlaran/fastflow/core"

// ScopedInclude inserts u into target for the lifetime of the returned
// guard, restoring target to its prior state when Close is called (via
// defer at the call site) — mirroring Rust's ScopedInclude/Drop. If u
// was already a member, Close is a no-op: the set owns u independently
// of this scope, so the guard must not remove it on exit.
type ScopedInclude struct {
	target *core.NodeSet
	u      int
	added  bool
}

// Include inserts u into target, returning a guard whose Close restores
// target's prior membership of u.
func Include(target *core.NodeSet, u int) *ScopedInclude {
	return &ScopedInclude{target: target, u: u, added: target.Insert(u)}
}

// Close restores target to the state it had before Include was called.
func (g *ScopedInclude) Close() {
	if g.added {
		g.target.Remove(g.u)
	}
}

// ScopedExclude removes u from target for the lifetime of the returned
// guard, restoring target's prior membership when Close is called.
type ScopedExclude struct {
	target  *core.NodeSet
	u       int
	removed bool
}

// Exclude removes u from target, returning a guard whose Close restores
// target's prior membership of u.
func Exclude(target *core.NodeSet, u int) *ScopedExclude {
	return &ScopedExclude{target: target, u: u, removed: target.Remove(u)}
}

// Close restores target to the state it had before Exclude was called.
func (g *ScopedExclude) Close() {
	if g.removed {
		g.target.Insert(g.u)
	}
}
