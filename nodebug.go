//go:build !debug
// +build !debug

package linkstack

const debug = false
