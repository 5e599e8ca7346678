// Package push provides push-based stream combinators.
//
// A push pipeline is built back to front: the terminal Sink comes first and
// every combinator wraps the sink downstream of it, returning a new sink that
// sits one step earlier in the data flow. The driver then feeds the outermost
// sink one value at a time with Push.
//
//	out := push.NewCollector[rune]()
//	chars := push.FlatMap(out, func(s string) []rune { return []rune(s) })
//	text := push.Map(chars, func(n int) string { return fmt.Sprintf("[%d]", n) })
//	evens := push.Filter(text, func(n int) bool { return n%2 == 0 })
//	push.PushAll(evens, 1, 2, 3, 4, 5) // out.Values() == "[2][4]"
//
// There is no end-of-stream signal and no way for a sink to ask its producer
// to stop; every pushed value is carried through the whole chain before Push
// returns.
package push
