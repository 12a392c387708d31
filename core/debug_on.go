//go:build soyadebug

package core

const debugBuild = true
