package coopflow

// recoverInto runs fn and, if it panics, logs the panic against name
// under the given context label and swallows it. Used by Periodic's tick
// handlers and the Timed* timeout handlers to honor §7's
// fault-containment invariant: application callback panics never
// propagate out of a Step call.
func recoverInto(log LogSink, context, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(context+" panicked", "generator", name, "recover", r)
		}
	}()
	fn()
}
