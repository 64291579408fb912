package typesys

import "fmt"

// fmtPointer gives a stable, total ordering key for a definition when two
// distinct definitions share a name across packages.
func fmtPointer(v interface{}) string {
	return fmt.Sprintf("%p", v)
}
