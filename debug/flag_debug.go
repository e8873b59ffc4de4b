//go:build debug

package debug

import "fmt"

// Debug is set when the project is built with the debug tag. It enables
// expensive internal assertions and keeps full paths in stack traces.
const Debug = true

func init() {
	fmt.Println("WARNING -- DEBUG FLAG IS ON")
}
