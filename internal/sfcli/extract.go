package sfcli

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON parses the first JSON value found in s into v.
//
// The sf CLI can prepend non-JSON diagnostic text (update notices, warnings)
// to its --json output even when stderr is redirected away. This scans for
// the first JSON-opening character and parses only the substring from that
// point forward; anything before it is discarded unconditionally.
func ExtractJSON(s string, v any) error {
	idx := strings.IndexAny(s, "{[")
	if idx < 0 {
		return fmt.Errorf("parse failure: no JSON value in output")
	}
	if err := json.Unmarshal([]byte(s[idx:]), v); err != nil {
		return fmt.Errorf("parse failure: %w", err)
	}
	return nil
}
