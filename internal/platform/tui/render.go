package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-narrator/internal/build"
	"github.com/vovakirdan/tui-narrator/internal/core"
	"github.com/vovakirdan/tui-narrator/internal/sim"
	"github.com/vovakirdan/tui-narrator/internal/speech"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellWall
	cellSolid
	cellCursor
	cellCorner
)

var cellGlyphs = map[cellKind]rune{
	cellEmpty:  '·',
	cellWall:   '░',
	cellSolid:  '█',
	cellCursor: '+',
	cellCorner: 'x',
}

// cellStyle is a cell kind plus whether it lies inside the selection.
type cellStyle struct {
	kind     cellKind
	selected bool
}

func (t Theme) style(c cellStyle) lipgloss.Style {
	var st lipgloss.Style
	switch c.kind {
	case cellSolid:
		st = t.SolidTile
	case cellWall:
		st = t.WallTile
	case cellCursor:
		st = t.Cursor
	case cellCorner:
		st = t.Corner
	default:
		st = t.EmptyCell
	}
	if c.selected {
		st = st.Inherit(t.Selected)
	}
	return st
}

// RenderMenu draws the current sandbox screen with the focused option marked.
func RenderMenu(t Theme, s *Sandbox) string {
	var sb strings.Builder
	sb.WriteString(t.MenuTitle.Render(s.Mode().String()))
	sb.WriteString("\n\n")

	options := s.Options()
	if len(options) == 0 {
		sb.WriteString(t.MenuHint.Render("(nothing to select, esc to go back)"))
	}
	for i, label := range options {
		if i == s.Focus() {
			sb.WriteString(t.MenuItemActive.Render("> " + label))
		} else {
			sb.WriteString(t.MenuItemNormal.Render("  " + label))
		}
		sb.WriteRune('\n')
	}
	if s.Typing() {
		sb.WriteString("\n")
		sb.WriteString(t.MenuHint.Render("type a world name, backspace deletes"))
	}
	return sb.String()
}

// RenderWorld draws a w x h window of the grid centered on the cursor, with
// the selection and first corner highlighted.
func RenderWorld(t Theme, g *sim.Grid, sel build.Selection, cursor core.Point, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	bounds := g.Bounds()
	originX := core.Clamp(cursor.X-w/2, 0, core.Max(bounds.W-w, 0))
	originY := core.Clamp(cursor.Y-h/2, 0, core.Max(bounds.H-h, 0))
	endX := core.Min(originX+w, bounds.Right())
	endY := core.Min(originY+h, bounds.Bottom())

	v := worldView{grid: g, cursor: cursor}
	v.rect, v.hasRect = sel.Rect()
	v.first, v.hasFirst, _, _ = sel.Corners()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)
	for y := originY; y < endY; y++ {
		if y > originY {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style
		x := originX
		for x < endX {
			start := v.at(x, y)
			var run strings.Builder
			for x < endX {
				c := v.at(x, y)
				if c != start {
					break
				}
				run.WriteRune(cellGlyphs[c.kind])
				x++
			}
			sb.WriteString(t.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

type worldView struct {
	grid     *sim.Grid
	cursor   core.Point
	rect     core.Rect
	hasRect  bool
	first    core.Point
	hasFirst bool
}

func (v worldView) at(x, y int) cellStyle {
	c := cellStyle{kind: cellEmpty, selected: v.hasRect && v.rect.Contains(x, y)}
	switch tile, _ := v.grid.Tile(x, y); {
	case x == v.cursor.X && y == v.cursor.Y:
		c.kind = cellCursor
	case v.hasFirst && !v.hasRect && x == v.first.X && y == v.first.Y:
		c.kind = cellCorner
	case tile.Active:
		c.kind = cellSolid
	case tile.Wall != 0:
		c.kind = cellWall
	}
	return c
}

// RenderAnnouncements draws the most recent utterances, newest last, in a
// bordered panel.
func RenderAnnouncements(t Theme, us []speech.Utterance, w, h int) string {
	lines := core.Max(h-3, 1)
	if len(us) > lines {
		us = us[len(us)-lines:]
	}

	var sb strings.Builder
	sb.WriteString(t.PanelTitle.Render("Spoken"))
	for _, u := range us {
		style := t.SpokenMenu
		if u.Source == "build" {
			style = t.SpokenBuild
		}
		if u.Force {
			style = style.Inherit(t.SpokenForced)
		}
		sb.WriteRune('\n')
		sb.WriteString(t.SpokenMeta.Render(fmt.Sprintf("%-6s", u.Kind)))
		sb.WriteRune(' ')
		sb.WriteString(style.Render(u.Text))
	}
	return t.PanelBorder.Width(core.Max(w-2, 10)).Render(sb.String())
}
