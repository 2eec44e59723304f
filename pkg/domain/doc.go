// Package domain contains the entities shared across packages. The serving
// core of this application is stateless; the only persistent entity is the
// per-endpoint API traffic aggregate.
package domain
