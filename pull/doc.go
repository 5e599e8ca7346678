// Package pull provides composable, pull-based stream combinators.
//
// Streams are lazy: nothing happens until a consumer calls Next, and the
// only driving terminal is ForEach (Collect and Reduce are built on it).
// Each stage pulls from the single upstream it was built on, so a pipeline
// never computes more elements than the consumer asks for.
//
// A stream signals exhaustion by returning (zero, false) from Next. Sources
// built by this package keep returning (zero, false) on every later call, and
// the combinators preserve that as long as their upstream does.
//
// # Operators
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate (iterative skip loop)
//   - FlatMap: expand each value into a sub-stream, one buffer at a time
//   - Concat: join streams sequentially
//
// # Terminals
//
//   - ForEach: drive the stream to completion
//   - Collect, Reduce: gather or fold every value
//   - All: range-over-func view of a stream
//
// # Usage
//
//	src := pull.Range(1, 5)
//	evens := pull.Filter(src, func(n int) bool { return n%2 == 0 })
//	text := pull.Map(evens, func(n int) string { return fmt.Sprintf("[%d]", n) })
//	chars := pull.FlatMap(text, pull.Runes)
//	pull.ForEach(chars, func(r rune) { fmt.Print(string(r)) }) // [2][4]
package pull
