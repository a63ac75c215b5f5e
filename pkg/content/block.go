package content

import (
	"fmt"
	"strconv"
)

// Block is the wire shape of one content block: a JSON object with a "type"
// discriminator and type-specific fields. All field access goes through the
// accessor methods, which substitute zero values for missing or mistyped
// fields so renderers never have to guard against malformed input.
type Block map[string]any

// Type returns the block's type tag, defaulting to "text".
func (b Block) Type() string {
	return b.Str("type", "text")
}

// Str returns the string field for key, or def when absent or not a string.
// Numeric values are formatted, matching the loose typing of hand-written
// JSON sources (e.g. "score": 14 read where a string is displayed).
func (b Block) Str(key, def string) string {
	v, ok := b[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	if s := Stringify(v); s != "" {
		return s
	}
	return def
}

// Int returns the integer field for key, or def when absent.
// JSON numbers decode as float64; both forms are accepted.
func (b Block) Int(key string, def int) int {
	switch v := b[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Bool returns the boolean field for key, false when absent.
func (b Block) Bool(key string) bool {
	v, _ := b[key].(bool)
	return v
}

// Map returns the nested object for key, or an empty Block.
func (b Block) Map(key string) Block {
	switch v := b[key].(type) {
	case Block:
		return v
	case map[string]any:
		return Block(v)
	}
	return Block{}
}

// Blocks returns the list of nested objects for key. Non-object elements are
// skipped.
func (b Block) Blocks(key string) []Block {
	list, ok := b[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Block, 0, len(list))
	for _, el := range list {
		switch v := el.(type) {
		case Block:
			out = append(out, v)
		case map[string]any:
			out = append(out, Block(v))
		}
	}
	return out
}

// StrList returns the list of strings for key. Non-string elements are
// stringified rather than dropped.
func (b Block) StrList(key string) []string {
	switch list := b[key].(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, el := range list {
			out = append(out, Stringify(el))
		}
		return out
	}
	return nil
}

// Rows returns the list-of-lists field for key as string cells, used by the
// table renderer. Each inner element is stringified.
func (b Block) Rows(key string) [][]string {
	list, ok := b[key].([]any)
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(list))
	for _, el := range list {
		switch row := el.(type) {
		case []string:
			out = append(out, row)
		case []any:
			cells := make([]string, 0, len(row))
			for _, c := range row {
				cells = append(cells, Stringify(c))
			}
			out = append(out, cells)
		}
	}
	return out
}

// Stringify renders a scalar JSON value for HTML interpolation. Integral
// floats print without a decimal point so `"score": 14` renders as "14".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
