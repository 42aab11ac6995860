package header

import (
	"fmt"
	"strconv"
	"time"

	"braces.dev/errtrace"
)

// FormatValue converts v to the header value text.
// Strings and byte slices are taken as is, numbers and booleans use their canonical
// decimal form, [time.Time] is formatted as an HTTP date, [fmt.Stringer] uses String.
// Any other value is formatted with the %v verb. A nil value is an error.
func FormatValue(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", errtrace.Wrap(newInvalidValueError("nil value"))
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case time.Time:
		return FormatDate(v), nil
	case *time.Time:
		if v == nil {
			return "", errtrace.Wrap(newInvalidValueError("nil value"))
		}
		return FormatDate(*v), nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}
