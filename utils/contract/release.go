//go:build !tlwe_debug

package contract

const debugBuild = false
