package common

import "strings"

// CheckFieldText rejects text that cannot be represented in the unquoted
// comma-separated table format: commas and line breaks.
func CheckFieldText(s string) error {
	if strings.ContainsAny(s, ",\n\r") {
		return ErrInvalidFieldText
	}
	return nil
}

// CheckMessageText rejects text that cannot be stored as a notification
// message. Commas are fine (the read side binds the remainder of the line to
// the message), line breaks are not.
func CheckMessageText(s string) error {
	if strings.ContainsAny(s, "\n\r") {
		return ErrInvalidFieldText
	}
	return nil
}
