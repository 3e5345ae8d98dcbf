// Package mongodb implements the store interfaces on top of a MongoDB
// database using the official driver. All filters thread the soft-delete
// scope through, so deleted records never surface from these types.
package mongodb
