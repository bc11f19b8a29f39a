// Package memory provides in-memory implementations of driven port interfaces.
// They back the default (uncached) configuration and the tests.
package memory
