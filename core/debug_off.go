//go:build !soyadebug

package core

// debugBuild turns on the strict configuration checks for every parser.
// Build with -tags soyadebug to enable them.
const debugBuild = false
