package menu

import (
	"fmt"

	"github.com/vovakirdan/tui-narrator/internal/engine"
	"github.com/vovakirdan/tui-narrator/internal/textnorm"
	"github.com/vovakirdan/tui-narrator/internal/uiprobe"
)

// OptionResolver builds the current text of one numbered option from live
// engine state.
type OptionResolver func(r engine.Reader) string

// CustomResolver resolves options of a mode whose layout is computed at
// runtime (player and world lists).
type CustomResolver func(r engine.Reader, index int) (string, bool)

// Catalog maps (mode, option index) to speakable labels.
type Catalog struct {
	reader  engine.Reader
	tables  map[Mode][]OptionResolver
	custom  map[Mode]CustomResolver
	silent  map[Mode]bool
	legacy  []string
	onPanic func(where string, recovered any)
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLegacyLabels installs the flat fallback table indexed by option index.
func WithLegacyLabels(labels []string) CatalogOption {
	return func(c *Catalog) {
		c.legacy = append([]string(nil), labels...)
	}
}

// WithTable replaces the option table of one mode.
func WithTable(mode Mode, resolvers []OptionResolver) CatalogOption {
	return func(c *Catalog) {
		c.tables[mode] = resolvers
	}
}

// WithCustom installs a custom resolver for one mode.
func WithCustom(mode Mode, fn CustomResolver) CatalogOption {
	return func(c *Catalog) {
		c.custom[mode] = fn
	}
}

// WithPanicObserver observes resolver panics swallowed by the catalog.
func WithPanicObserver(fn func(where string, recovered any)) CatalogOption {
	return func(c *Catalog) {
		c.onPanic = fn
	}
}

// NewCatalog creates a catalog with the built-in tables.
func NewCatalog(r engine.Reader, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		reader: r,
		tables: defaultTables(),
		custom: defaultCustom(),
		// mod config elements are only reachable through hover
		silent: map[Mode]bool{ModeLoading: true, ModeModConfig: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DescribeMenuMode returns the spoken label of a mode ("Settings.").
// Unknown modes use the UI root's own label when it has one; otherwise the
// result is empty and nothing should be spoken.
func (c *Catalog) DescribeMenuMode(mode Mode, root uiprobe.Root) string {
	if label, ok := modeLabels[mode]; ok {
		return label + "."
	}
	if labeler, ok := root.(uiprobe.Labeler); ok {
		label := c.safeCall("root label", func() string {
			l, _ := labeler.TryGetLabel()
			return l
		})
		if clean := textnorm.Normalize(label); clean != "" {
			return clean + "."
		}
	}
	return ""
}

// DescribeMenuItem returns the label of option index in mode. Lookup order:
// static table, custom resolver, engine's raw item labels, legacy table,
// then a synthesized "Option N". It never panics.
func (c *Catalog) DescribeMenuItem(mode Mode, index int) string {
	if index < 0 || c.silent[mode] {
		return ""
	}

	if table, ok := c.tables[mode]; ok && index < len(table) && table[index] != nil {
		resolver := table[index]
		label := c.safeCall(fmt.Sprintf("table %d/%d", mode, index), func() string {
			return resolver(c.reader)
		})
		if clean := textnorm.Normalize(label); clean != "" {
			return clean
		}
	}

	if fn, ok := c.custom[mode]; ok {
		label := c.safeCall(fmt.Sprintf("custom %d/%d", mode, index), func() string {
			l, found := fn(c.reader, index)
			if !found {
				return ""
			}
			return l
		})
		if clean := textnorm.Normalize(label); clean != "" {
			return clean
		}
	}

	if items, ok := engine.Strings(c.reader, engine.KeyMenuItems); ok && index < len(items) {
		if clean := textnorm.Normalize(items[index]); clean != "" {
			return clean
		}
	}

	if index < len(c.legacy) {
		if clean := textnorm.Normalize(c.legacy[index]); clean != "" {
			return clean
		}
	}

	return fmt.Sprintf("Option %d", index+1)
}

// OptionCount returns how many options the mode is known to have, or 0.
func (c *Catalog) OptionCount(mode Mode) int {
	if c.silent[mode] {
		return 0
	}
	if table, ok := c.tables[mode]; ok {
		return len(table)
	}
	if items, ok := engine.Strings(c.reader, engine.KeyMenuItems); ok {
		return len(items)
	}
	return 0
}

// DeletionCombined joins a deletion prompt with the focused yes/no response
// so they are spoken as one utterance.
func (c *Catalog) DeletionCombined(mode Mode, index int) (string, bool) {
	if !mode.IsDeletion() || (index != 1 && index != 2) {
		return "", false
	}
	prompt := c.DescribeMenuItem(mode, 0)
	response := c.DescribeMenuItem(mode, index)
	combined := textnorm.JoinWithComma(prompt, response)
	if combined == "" {
		return "", false
	}
	return combined, true
}

func (c *Catalog) safeCall(where string, fn func() string) (s string) {
	defer func() {
		if rec := recover(); rec != nil {
			if c.onPanic != nil {
				c.onPanic(where, rec)
			}
			s = ""
		}
	}()
	return fn()
}
