//go:build !debug

package geom

// dcheck is the release build's no-op counterpart to debug.go's version.
func dcheck(cond bool, msg string) {}
