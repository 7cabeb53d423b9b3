package rowan

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Root debug flag so that object
// operations (which lack a Root pointer) can check it cheaply. Only valid
// with a single Root; multiple Roots with differing debug modes will reflect
// whichever called SetDebugMode last.
var globalDebug bool

// debugCheckDestroyed panics with a descriptive message when a destroyed
// object is used in a tree operation. Only called when debug mode is on; in
// release mode callers skip this entirely.
func debugCheckDestroyed(o *GameObject, op string) {
	if o.destroyed {
		panic(fmt.Sprintf("rowan debug: %s on destroyed object %q", op, o.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(o *GameObject) {
	depth := 0
	for p := o; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: tree depth %d exceeds %d (object %q)\n",
			depth, debugMaxTreeDepth, o.Name)
	}
}

// debugCheckChildCount warns on stderr if an object has an excessive number
// of children, which usually indicates a reaping leak.
const debugMaxChildCount = 1000

func debugCheckChildCount(o *GameObject) {
	if len(o.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: object %q has %d children (> %d)\n",
			o.Name, len(o.children), debugMaxChildCount)
	}
}
