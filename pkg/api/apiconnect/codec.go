package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
	"github.com/fxamacker/cbor/v2"
)

const (
	// CodecJSON is served as application/json and replaces Connect's
	// protobuf-only JSON codec.
	CodecJSON = "json"

	// CodecCBOR is served as application/cbor.
	CodecCBOR = "cbor"
)

// jsonCodec encodes plain Go structs with encoding/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return CodecJSON }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// cborCodec encodes with Core Deterministic Encoding (RFC 8949 §4.2), so
// the same message always produces the same bytes. Field names follow the
// json struct tags.
type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func (c cborCodec) Name() string { return CodecCBOR }

func (c cborCodec) Marshal(v any) ([]byte, error) { return c.enc.Marshal(v) }

func (c cborCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return c.dec.Unmarshal(data, v)
}

var defaultCBOR = newCBORCodec()

func newCBORCodec() cborCodec {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("apiconnect: CBOR encoder initialization failed: " + err.Error())
	}
	// Unknown fields are ignored so older clients keep working.
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("apiconnect: CBOR decoder initialization failed: " + err.Error())
	}
	return cborCodec{enc: enc, dec: dec}
}

// WithJSON selects the JSON codec. Clients use it unless told otherwise.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}

// WithCBOR selects the CBOR codec for a client.
func WithCBOR() connect.Option {
	return connect.WithCodec(defaultCBOR)
}

// handlerCodecs registers every supported codec on a handler.
func handlerCodecs() connect.HandlerOption {
	return connect.WithHandlerOptions(WithJSON(), WithCBOR())
}
