package cli

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts are the birth date formats accepted on the command line
var DateLayouts = []string{"02/01/2006", "2006-01-02"}

// ParseDate parses a dd/MM/yyyy or ISO date in the local time zone
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, Exit(ExitUsage, fmt.Errorf("invalid date %q (use dd/mm/yyyy or yyyy-mm-dd)", s))
}
