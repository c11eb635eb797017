// Package testutil provides fault-injecting readers shared by package tests.
//
// The readers simulate the two input conditions unit tests cannot get from
// strings.Reader alone: a source that fails partway through, and a source
// that trickles bytes one at a time so buffered readers exercise their
// refill paths.
//
// This package is internal and should not be imported by external code.
package testutil
