package gtest

import "strings"

// ConvertTimestamp splits "YYYY-MM-DDTHH:MM:SS" into ("DD-MM-YYYY", "HH:MM:SS").
// The components are not validated beyond the separators.
func ConvertTimestamp(ts string) (date, clock string, err error) {
	parts := strings.Split(ts, "T")
	if len(parts) != 2 {
		return "", "", &TimestampError{Value: ts}
	}
	ymd := strings.Split(parts[0], "-")
	if len(ymd) != 3 {
		return "", "", &TimestampError{Value: ts}
	}
	return ymd[2] + "-" + ymd[1] + "-" + ymd[0], parts[1], nil
}
