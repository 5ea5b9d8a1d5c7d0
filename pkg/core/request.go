package core

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Security describes the authentication an endpoint requires.
type Security int

const (
	// SecurityNone marks a public endpoint.
	SecurityNone Security = iota
	// SecurityAPIKey marks an endpoint that needs the X-MBX-APIKEY header only.
	SecurityAPIKey
	// SecuritySigned marks an endpoint that needs the API key header, a timestamp and a signature.
	SecuritySigned
)

func (s Security) String() string {
	switch s {
	case SecurityNone:
		return "NONE"
	case SecurityAPIKey:
		return "API_KEY"
	case SecuritySigned:
		return "SIGNED"
	default:
		return "UNKNOWN"
	}
}

// Endpoint describes one REST endpoint. Values are declared once per call site and never mutated.
type Endpoint struct {
	Path     string
	Method   string
	Security Security
	// Weight is the IP weight of the call. It is informational only.
	Weight int
}

// Public returns a public GET endpoint with the given weight.
func Public(path string, weight int) Endpoint {
	return Endpoint{Path: path, Method: http.MethodGet, Security: SecurityNone, Weight: weight}
}

// Signed returns a signed endpoint with the given method and weight.
func Signed(method, path string, weight int) Endpoint {
	return Endpoint{Path: path, Method: method, Security: SecuritySigned, Weight: weight}
}

// Params is a query parameter set. Nil values, including typed nil pointers, are absent.
type Params map[string]any

// Set stores value under key and returns the params for chaining.
func (p Params) Set(key string, value any) Params {
	p[key] = value
	return p
}

// Clone returns a shallow copy of the params.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)
	return out
}

// Values renders present params into url.Values.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for k, v := range p {
		if s, ok := formatParam(v); ok {
			values.Set(k, s)
		}
	}
	return values
}

// Encode renders present params as a query string sorted by key.
// The result is the exact string that is signed and sent.
func (p Params) Encode() string {
	values := p.Values()
	if len(values) == 0 {
		return ""
	}

	keys := slices.Sorted(maps.Keys(values))
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(values.Get(k)))
	}
	return sb.String()
}

// formatParam renders a present value. Nil pointers, maps, slices and interfaces
// are absent; non-nil pointers are formatted through their target.
func formatParam(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return "", false
		}
	}

	switch val := rv.Interface().(type) {
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	case time.Time:
		return strconv.FormatInt(val.UnixMilli(), 10), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return fmt.Sprintf("%v", val), true
	}
}
