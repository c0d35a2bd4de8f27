// Package apiconnect wires the househub services to Connect: procedure
// names, handler interfaces, HTTP handlers and typed clients.
//
// Handlers accept both the JSON and CBOR codecs. Clients speak JSON by
// default; pass WithCBOR to switch.
package apiconnect

import "connectrpc.com/connect"

// clientOptions puts the JSON codec ahead of caller options so that a
// caller-supplied codec wins.
func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{WithJSON()}, opts...)
}

// handlerOptions puts the codecs ahead of caller options.
func handlerOptions(opts []connect.HandlerOption) connect.HandlerOption {
	return connect.WithHandlerOptions(append([]connect.HandlerOption{handlerCodecs()}, opts...)...)
}
