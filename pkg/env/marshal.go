package env

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrUnencodable = errors.New("value cannot be stored in a .env file")

// MarshalEnv renders the env-tagged fields of the struct c points to as .env
// content. Zero values are skipped and lines are sorted by key.
//
// Values are double-quoted by godotenv. godotenv does not read back an escaped
// double quote, so values containing one are single-quoted instead.
func MarshalEnv(c any) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", fmt.Errorf("marshal env: nil %T", c)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("marshal env: expected struct, got %s", v.Kind())
	}

	vars := make(map[string]string)
	var lines []string
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// "KEY,required,notEmpty" -> "KEY"
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			continue
		}

		val := v.Field(i)
		if val.IsZero() {
			continue
		}

		s := formatValue(val)
		if err := ValidateValue(s); err != nil {
			return "", fmt.Errorf("marshal env: %s: %w", key, err)
		}
		if strings.Contains(s, `"`) {
			lines = append(lines, fmt.Sprintf("%s='%s'", key, s))
			continue
		}
		vars[key] = s
	}

	if len(vars) > 0 {
		content, err := godotenv.Marshal(vars)
		if err != nil {
			return "", fmt.Errorf("marshal env: %w", err)
		}
		lines = append(lines, strings.Split(content, "\n")...)
	}
	if len(lines) == 0 {
		return "", nil
	}

	sort.Strings(lines)
	return strings.Join(lines, "\n") + "\n", nil
}

// ValidateValue reports whether s survives a write and read through MarshalEnv
// and godotenv unchanged.
func ValidateValue(s string) error {
	switch {
	case strings.HasSuffix(s, `\`):
		// the closing quote would read as escaped
		return fmt.Errorf("%w: trailing backslash", ErrUnencodable)
	case strings.Contains(s, `"`) && strings.ContainsAny(s, "'\n\r"):
		return fmt.Errorf("%w: double quote mixed with single quote or line break", ErrUnencodable)
	}
	return nil
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
