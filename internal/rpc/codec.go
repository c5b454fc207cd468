package rpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Messages travel as JSON under content-subtype "json"
// (application/grpc+json), so plain Go structs serve as request types.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return codecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
