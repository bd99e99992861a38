package service

import (
	"encoding/json"
	"fmt"
)

const (
	codecNameJSON        = "json"
	codecNameJSONCharset = "json; charset=utf-8"
)

// JSONCodec marshals plain Go structs as JSON for Connect.
// The zero value registers under the "json" name, replacing the protobuf JSON codec,
// so requests with Content-Type application/json decode into our message types.
// Connect keys codecs by the full content subtype, so handlers also register a copy
// named "json; charset=utf-8".
type JSONCodec struct {
	name string
}

func (c JSONCodec) Name() string {
	if c.name == "" {
		return codecNameJSON
	}
	return c.name
}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	// An empty body means an empty request message.
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode json message: %w", err)
	}
	return nil
}
