// Package api defines the request and response messages of the househub
// Connect services. Messages are plain structs encoded as JSON or CBOR.
//
// Money amounts travel as decimal strings ("12.50") so that no precision is
// lost in either encoding.
package api
