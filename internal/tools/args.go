package tools

import (
	"math"

	"github.com/narwhalmedia/greenroom/pkg/errors"
)

// Int returns the integer argument key, or nil when it is absent or null.
// JSON numbers must be integral.
func (a Args) Int(key string) (*int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case int:
		return &n, nil
	case int64:
		i := int(n)
		return &i, nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return nil, errors.InvalidArgumentf("%s must be an integer", key)
		}
		i := int(n)
		return &i, nil
	}
	return nil, errors.InvalidArgumentf("%s must be an integer", key)
}

// IntOr returns the integer argument key or def when absent.
func (a Args) IntOr(key string, def int) (int, error) {
	v, err := a.Int(key)
	if err != nil || v == nil {
		return def, err
	}
	return *v, nil
}

// FloatOr returns the numeric argument key or def when absent.
func (a Args) FloatOr(key string, def float64) (float64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, errors.InvalidArgumentf("%s must be a number", key)
}

// String returns the string argument key, or nil when it is absent or null.
func (a Args) String(key string) (*string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, errors.InvalidArgumentf("%s must be a string", key)
	}
	return &s, nil
}
