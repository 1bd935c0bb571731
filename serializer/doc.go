// Package serializer converts request bodies to wire strings and response
// bodies back to values.
//
// A Serializer is injected into the client at construction. JSON is the
// default; YAML is available for backends that speak it.
package serializer
