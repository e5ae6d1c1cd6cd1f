package engine

import (
	"strings"

	"github.com/specialistvlad/mailassembler/internal/markup"
)

// Item field names in the schedule document.
const (
	itemKey         = "item"
	titleKey        = "title"
	participantsKey = "participants"
	precisKey       = "precis"
	equipmentKey    = "equipment"
)

// RenderSchedule renders each of person's <item> children in document order.
// Title and participants are always emitted; equipment and precis only when
// non-empty. Every item ends with a separator, even an empty one.
func RenderSchedule(person *markup.Node, format Format) string {
	var b strings.Builder
	for _, item := range person.ChildrenNamed(itemKey) {
		title := item.Get(titleKey)
		participants := item.Get(participantsKey)
		equipment := item.Get(equipmentKey)
		precis := item.Get(precisKey)

		switch format {
		case HTML:
			writeParagraph(&b, title)
			writeParagraph(&b, participants)
			if equipment != "" {
				writeParagraph(&b, equipment)
			}
			if precis != "" {
				writeParagraph(&b, precis)
			}
			writeParagraph(&b, "")
		default:
			b.WriteString(title + "\n")
			b.WriteString(participants + "\n")
			if equipment != "" {
				b.WriteString(equipment + "\n")
			}
			if precis != "" {
				b.WriteString(precis + "\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeParagraph(b *strings.Builder, text string) {
	b.WriteString("<p>")
	b.WriteString(text)
	b.WriteString("</p>\n")
}
