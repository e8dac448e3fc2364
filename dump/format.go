package dump

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
)

// FormatSnapshot formats a snapshot for terminal display, with a header
// identifying the capture and one colored line per slot.
func FormatSnapshot(s *Snapshot) string {
	var b strings.Builder
	b.WriteString(color.Gray.Sprint("----------------------------------------"))
	b.WriteString("\n")
	b.WriteString(color.Bold.Sprint("Snapshot: "))
	b.WriteString(fmt.Sprintf("%s\n", s.ID))
	if !s.Taken.IsZero() {
		b.WriteString(color.Bold.Sprint("Taken:    "))
		b.WriteString(fmt.Sprintf("%s\n", s.Taken.Format("2006-01-02 15:04:05 MST")))
	}
	b.WriteString(color.Bold.Sprint("Slots:    "))
	b.WriteString(fmt.Sprintf("%d\n", len(s.Slots)))
	b.WriteString(color.Gray.Sprint("----------------------------------------"))
	b.WriteString("\n")

	if len(s.Slots) == 0 {
		b.WriteString("  (empty stack)\n")
		return b.String()
	}
	for _, slot := range s.Slots {
		b.WriteString(fmt.Sprintf("  [%d] ", slot.Index))
		b.WriteString(color.Yellow.Sprintf("'%s'", slot.TypeName))
		b.WriteString(fmt.Sprintf(" = %s\n", slot.Value))
	}
	return b.String()
}
