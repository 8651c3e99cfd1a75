package shell

import (
	"fmt"
	"strings"

	"github.com/vvka-141/fsh/internal/tui"
	"github.com/vvka-141/fsh/pkg/fsh"
)

const minNameWidth = 4 // len("NAME")

// renderListing prints the table for ls/dir: a header row, a separator and
// one row per item. Directories show the <DIR> literal in the size column;
// an undeterminable directory size renders as n/a.
func (s *Shell) renderListing(items []fsh.Item) {
	if len(items) == 0 {
		s.printf("%s\n", s.style(tui.MutedStyle, "(empty)"))
		return
	}

	nameWidth := minNameWidth
	for _, item := range items {
		if n := len(item.Name()); n > nameWidth {
			nameWidth = n
		}
	}

	header := fmt.Sprintf("%-5s %-*s %14s  %s", "TYPE", nameWidth, "NAME", "SIZE", "CREATED")
	s.printf("%s\n", s.style(tui.HeaderStyle, header))
	s.printf("%s\n", strings.Repeat("-", len(header)))

	for _, item := range items {
		row := fmt.Sprintf("%-5s %-*s %14s  %s",
			itemType(item),
			nameWidth, item.Name(),
			itemSize(item),
			item.CreationTime().Format(fsh.TimeLayout),
		)
		if item.IsDir() {
			row = s.style(tui.DirStyle, row)
		}
		s.printf("%s\n", row)
	}
}

func itemType(item fsh.Item) string {
	if item.IsDir() {
		return "DIR"
	}
	return "FILE"
}

func itemSize(item fsh.Item) string {
	if item.IsDir() {
		return "<DIR>"
	}
	size := item.Size()
	if size == fsh.SizeUnknown {
		return "n/a"
	}
	return fmt.Sprintf("%d bytes", size)
}
