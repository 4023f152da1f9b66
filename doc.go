// package immut publishes immutable versions of a value from one writer
// goroutine to any number of readers without locks.
//
// Consider a simulation that produces a new state every step while a renderer
// draws whatever state is newest. Guarding the state with a mutex stalls one
// side whenever the other is busy, and swapping a bare pointer gives no way to
// know when an old state can be recycled. Using an Object, the writer builds a
// new version and commits it, and readers hold Handles that keep the version
// they looked at alive for as long as they need it. Copy clones the current
// version with the Config's Copy hook, so a State holding slices or maps must
// provide one:
//
//	var state = immut.NewWithConfig(immut.Config[State]{Copy: State.Clone})
//
//	func Step() {
//		next, _ := state.Write().Copy()
//		next.Advance()
//		h := state.Write().Commit(next)
//		h.Release()
//	}
//
//	func Draw() {
//		h := state.Read().Get()
//		defer h.Release()
//		if h.Valid() {
//			render(h.Value())
//		}
//	}
//
// Versions are reclaimed in two phases. Whoever drops the last reference to a
// version that is no longer current marks it, and the writer deletes marked
// versions in a sweep after every commit, so the Reclaim hook of a Config only
// ever runs on the writer goroutine.
//
// Readers that poll once per frame can use a TickCache, which only acquires a
// new Handle when an external Signal has advanced and something was committed
// in the meantime. A TickCachePair serves two such readers from one stream,
// claiming every commit at most once between them.
//
// A BeachBall is a simpler token for two goroutines that take turns touching
// some shared memory directly.
//
// Misuse, like reading an empty Handle, closing an Object with live Handles, or
// throwing a ball you do not hold, panics with an error of class Error. When
// built with the race detector or the immut_debug tag, concurrent writers on
// one Object are detected as well.
package immut
