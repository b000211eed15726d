package scheduling

import (
	"fmt"
	"time"
)

var ptMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDate renders an instant as Brazilian Portuguese prose, e.g.
// "01 de junho, às 10h00". Used for notification text and cancellation
// mail bodies.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s, às %dh%02d",
		t.Day(), ptMonths[t.Month()-1], t.Hour(), t.Minute())
}
