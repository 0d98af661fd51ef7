// Package env writes configuration structs back out as .env files, using
// the same `env` struct tags the config package parses them with.
package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MarshalEnv renders one KEY=value line per tagged field of the struct c
// points to, in field order. Empty values are left out so the parser's
// defaults apply; booleans are always written because false is a choice.
func MarshalEnv(c any) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return "", fmt.Errorf("env: expected pointer to struct, got %T", c)
	}
	v = v.Elem()

	var b strings.Builder
	for _, field := range reflect.VisibleFields(v.Type()) {
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" || !field.IsExported() {
			continue
		}

		val, ok := render(v.FieldByIndex(field.Index))
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", key, quote(val))
	}
	return b.String(), nil
}

// render formats a field value; ok is false for values that should be omitted.
func render(v reflect.Value) (s string, ok bool) {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.String:
		return v.String(), v.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), !v.IsZero()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), !v.IsZero()
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), !v.IsZero()
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "", false
		}
		return render(v.Elem())
	default:
		if v.IsZero() {
			return "", false
		}
		return fmt.Sprint(v.Interface()), true
	}
}

// quote wraps values that a dotenv parser would otherwise trim or cut.
func quote(s string) string {
	if strings.ContainsAny(s, " \t\"'#\\$=\n") {
		return strconv.Quote(s)
	}
	return s
}
