// Package memory provides in-memory implementations of driven port
// interfaces. They back the "memory" history backend and service tests.
package memory
