// Package testutil provides host fixtures for exercising the matcher:
// a recording host that captures every batch and replace it receives,
// and a failing host that refuses batches. Production code must not
// import this package.
package testutil
