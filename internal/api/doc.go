// Package api contains the HTTP handlers, request/response models and the
// request-validation pipeline for the books service. Every mutating
// endpoint runs the same ordered checks: channel shape, path identifiers,
// body schema, referential existence, uniqueness, then the mutation.
package api
