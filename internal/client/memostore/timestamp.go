package memostore

import (
	"fmt"
	"time"
)

// FormatCreatedAt renders t the way the ko-KR locale prints a date and time,
// e.g. "2025. 3. 7. 오후 2:05:09".
func FormatCreatedAt(t time.Time) string {
	meridiem := "오전"
	if t.Hour() >= 12 {
		meridiem = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), meridiem, hour, t.Minute(), t.Second())
}
