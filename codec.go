package beacon

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec decodes the raw bytes emitted by a Source into a subject value.
type Codec interface {
	// Unmarshal deserializes bytes into a value.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json. Objects decode to
// map[string]any and numbers to float64. Blank payloads, such as a file read
// while it is being truncated, are rejected with ErrEmptyPayload.
type JSONCodec struct{}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyPayload
	}
	return json.Unmarshal(data, v)
}

func (JSONCodec) ContentType() string {
	return "application/json"
}

// YAMLCodec implements Codec using gopkg.in/yaml.v3.
//
// When decoding into an *any, the result takes the shape JSONCodec would
// produce: mappings become map[string]any and integers become float64, so a
// document compares equal whichever of the two formats it was written in.
// Blank payloads are rejected with ErrEmptyPayload.
type YAMLCodec struct{}

func (YAMLCodec) Unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyPayload
	}
	target, ok := v.(*any)
	if !ok {
		return yaml.Unmarshal(data, v)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	*target = jsonShape(raw)
	return nil
}

func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// jsonShape rewrites a decoded YAML tree into the types encoding/json uses.
func jsonShape(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = jsonShape(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = jsonShape(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = jsonShape(e)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	default:
		return v
	}
}

var (
	_ Codec = JSONCodec{}
	_ Codec = YAMLCodec{}
)
