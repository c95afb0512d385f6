package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

// decodeJSONC strips comments and trailing commas before parsing, so module
// files may be annotated by the people maintaining them.
func decodeJSONC(data []byte) (*Node, error) {
	return ParseJSON(jsonc.ToJSON(data))
}

// ParseJSON parses strict JSON into a tree, keeping the key order of objects
// and the literal text of numbers.
func ParseJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	n, err := readJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsing, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrParsing)
	}

	return n, nil
}

func readJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return readJSONObject(dec)
		case '[':
			return readJSONArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v)
	case string:
		return String(v), nil
	case json.Number:
		return Number(v.String()), nil
	case bool:
		return Bool(v), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func readJSONObject(dec *json.Decoder) (*Node, error) {
	out := Mapping()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}

		value, err := readJSONValue(dec)
		if err != nil {
			return nil, err
		}
		out.Set(key, value)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func readJSONArray(dec *json.Decoder) (*Node, error) {
	out := Sequence()
	for dec.More() {
		item, err := readJSONValue(dec)
		if err != nil {
			return nil, err
		}
		out.Append(item)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

// CompactJSON renders n as single-line JSON. The parameter resolver uses it
// to stringify structured values.
func CompactJSON(n *Node) (string, error) {
	b, err := encodeJSON(n, "")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func encodeJSON(n *Node, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if indent == "" {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	switch n.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if n.flag {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if !json.Valid([]byte(n.text)) {
			return fmt.Errorf("invalid number literal %q", n.text)
		}
		buf.WriteString(n.text)
	case KindString:
		return writeJSONString(buf, n.text)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, n.fields[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown node kind %d", n.kind)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encoder always terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
