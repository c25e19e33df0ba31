package harvest

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Fields holds the attributes of a create or update call, keyed by the
// field name the API expects (e.g. "name", "first-name", "spent_at").
// Values may be strings, integers, floats, booleans or time.Time; field
// names and values are only validated by the API.
type Fields map[string]any

// clone returns a shallow copy of f.
func (f Fields) clone() Fields {
	out := make(Fields, len(f)+2)
	for k, v := range f {
		out[k] = v
	}
	return out
}

// values form-encodes f. An empty Fields sends no body.
func (f Fields) values() url.Values {
	if len(f) == 0 {
		return nil
	}
	vals := make(url.Values, len(f))
	for k, v := range f {
		if v == nil {
			continue
		}
		vals.Set(k, formatField(v))
	}
	return vals
}

func formatField(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.Format(WireDateLayout)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
