// Package staged implements bidirectionally linked pipelines whose
// execution is deferred until Run is called.
//
// Each combinator links a new stage as the downstream of its upstream and
// records the pipeline's source, so Run on any stage starts the source,
// which pushes every element through the chain:
//
//	src := staged.FromSlice([]int{1, 2, 3, 4, 5})
//	evens := staged.Must(staged.Filter(src, func(n int) bool { return n%2 == 0 }))
//	text := staged.Must(staged.Map(evens, func(n int) string { return fmt.Sprintf("[%d]", n) }))
//	chars := staged.Must(staged.FlatMap(text, func(s string) staged.Stage[rune] { return staged.Runes(s) }))
//	out := staged.Must(staged.ForEach(chars, func(r rune) { fmt.Print(string(r)) }))
//	err := out.Run() // prints [2][4]
//
// A stage accepts exactly one downstream. A pipeline runs once and must end
// in a ForEach stage.
package staged
