package document

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
)

func decodeYAML(data []byte) (*Node, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsing, err)
	}
	return fromYAMLValue(raw), nil
}

func fromYAMLValue(v any) *Node {
	switch val := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(val)
	case string:
		return String(val)
	case int:
		return Number(strconv.Itoa(val))
	case int64:
		return Number(strconv.FormatInt(val, 10))
	case uint64:
		return Number(strconv.FormatUint(val, 10))
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return String(strconv.FormatFloat(val, 'g', -1, 64))
		}
		return Number(strconv.FormatFloat(val, 'g', -1, 64))
	case yaml.MapSlice:
		out := Mapping()
		for _, item := range val {
			out.Set(fmt.Sprint(item.Key), fromYAMLValue(item.Value))
		}
		return out
	case map[string]any:
		out := Mapping()
		for k, item := range val {
			out.Set(k, fromYAMLValue(item))
		}
		return out
	case []any:
		out := Sequence()
		for _, item := range val {
			out.Append(fromYAMLValue(item))
		}
		return out
	default:
		return String(fmt.Sprint(val))
	}
}

func encodeYAML(n *Node) ([]byte, error) {
	out, err := yaml.Marshal(toYAMLValue(n))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return out, nil
}

func toYAMLValue(n *Node) any {
	switch n.kind {
	case KindBool:
		return n.flag
	case KindNumber:
		if i, err := strconv.ParseInt(n.text, 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(n.text, 10, 64); err == nil {
			return u
		}
		if f, err := strconv.ParseFloat(n.text, 64); err == nil {
			return f
		}
		return n.text
	case KindString:
		return n.text
	case KindSequence:
		out := make([]any, 0, len(n.items))
		for _, item := range n.items {
			out = append(out, toYAMLValue(item))
		}
		return out
	case KindMapping:
		out := make(yaml.MapSlice, 0, len(n.keys))
		for _, key := range n.keys {
			out = append(out, yaml.MapItem{Key: key, Value: toYAMLValue(n.fields[key])})
		}
		return out
	default:
		return nil
	}
}
