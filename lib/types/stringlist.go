package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringList stores tag/author lists as a single text column.
// Values never contain newlines upstream, so newline is a safe separator.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, "\n"), nil
}

func (l *StringList) Scan(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("invalid type assertion")
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, "\n")
	return nil
}
