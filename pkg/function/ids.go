package function

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseID reads a positive integer identifier from a JSON number or numeric string.
// present is false when the field was absent, null, empty or zero.
func ParseID(n json.Number) (id int64, present bool, err error) {
	raw := strings.TrimSpace(n.String())
	if raw == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, err
	}
	if id == 0 {
		return 0, false, nil
	}
	return id, true, nil
}
