// Package store defines the persistence interfaces for the books service
// along with the shared error taxonomy implementations must map to.
// Concrete implementations live under internal/platform.
package store
