package ui

import (
	"fmt"
	"strings"
)

// MaxDisplayItems caps how many report lines are printed before the rest is
// summarized.
const MaxDisplayItems = 10

// Truncate returns at most limit items and the number left out. A limit
// below one disables truncation.
func Truncate(items []string, limit int) (shown []string, more int) {
	if limit < 1 || len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}

// BulletList renders items one per line, indented, truncated at
// MaxDisplayItems with a trailing "... and N more" line.
func BulletList(items []string) string {
	shown, more := Truncate(items, MaxDisplayItems)
	var b strings.Builder
	for _, item := range shown {
		fmt.Fprintf(&b, "  %s %s\n", SymbolBullet, Accent.Render(item))
	}
	if more > 0 {
		fmt.Fprintf(&b, "  %s\n", Muted.Render(fmt.Sprintf("... and %d more", more)))
	}
	return b.String()
}

// Group is one titled section of a Tree.
type Group struct {
	Title string
	Items []string
}

// Tree renders groups as titled trees with box-drawing branches. Empty
// groups are omitted.
func Tree(groups []Group) string {
	var sections []string
	for _, g := range groups {
		if len(g.Items) == 0 {
			continue
		}
		var b strings.Builder
		b.WriteString(Heading.Render(g.Title))
		b.WriteString(Muted.Render(fmt.Sprintf(" (%d)", len(g.Items))))
		b.WriteByte('\n')
		for i, item := range g.Items {
			branch := "├─"
			if i == len(g.Items)-1 {
				branch = "└─"
			}
			fmt.Fprintf(&b, "%s %s", Muted.Render(branch), Accent.Render(item))
			if i < len(g.Items)-1 {
				b.WriteByte('\n')
			}
		}
		sections = append(sections, b.String())
	}
	return strings.Join(sections, "\n\n")
}

// Boxed frames body under a bold title.
func Boxed(title, body string) string {
	return Box.Render(Bold.Render(title) + "\n\n" + body)
}
