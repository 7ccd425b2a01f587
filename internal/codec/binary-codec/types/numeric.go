//revive:disable:var-naming
package types

import "fmt"

// toUint normalizes the numeric JSON types Go's encoding/json and plain Go
// callers pass (float64, int, int32, int64, uint, uint32, uint64) into a
// uint64, rejecting values that don't fit in max.
func toUint(value any, max uint64) (uint64, error) {
	var n uint64

	switch v := value.(type) {
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("negative value %v", v)
		}
		n = uint64(v)
	case int:
		if v < 0 {
			return 0, fmt.Errorf("negative value %v", v)
		}
		n = uint64(v)
	case int32:
		if v < 0 {
			return 0, fmt.Errorf("negative value %v", v)
		}
		n = uint64(v)
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("negative value %v", v)
		}
		n = uint64(v)
	case uint:
		n = uint64(v)
	case uint32:
		n = uint64(v)
	case uint64:
		n = v
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", value)
	}

	if n > max {
		return 0, fmt.Errorf("value %d exceeds maximum %d", n, max)
	}
	return n, nil
}
