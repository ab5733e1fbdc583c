package parsing

import (
	"fmt"

	"github.com/chazu/tempo/desc"
)

// Parse runs a compiled item sequence over input and returns the accumulated
// fields along with the number of bytes consumed. Trailing input is not an
// error here; callers that require full consumption check the count, or put
// an end component in the description.
func Parse(items []desc.Item, input []byte) (*Parsed, int, error) {
	cur := desc.NewCursor(input)
	p := new(Parsed)
	if err := parseItems(p, &cur, items); err != nil {
		return nil, cur.Offset(), err
	}
	return p, cur.Offset(), nil
}

func parseItems(p *Parsed, cur *desc.Cursor, items []desc.Item) error {
	for _, it := range items {
		if err := parseItem(p, cur, it); err != nil {
			return err
		}
	}
	return nil
}

func parseItem(p *Parsed, cur *desc.Cursor, it desc.Item) error {
	switch it := it.(type) {
	case desc.Literal:
		if !cur.StripPrefix(it.Text) {
			return InvalidLiteralError{Offset: cur.Offset()}
		}
		return nil
	case desc.Component:
		return matchComponent(p, cur, it)
	case desc.Optional:
		// Snapshot both the cursor and the accumulator so a failing group
		// leaves no trace, then carry on as though it were absent.
		curSnap, parsedSnap := *cur, *p
		if err := parseItems(p, cur, it.Items); err != nil {
			*cur, *p = curSnap, parsedSnap
		}
		return nil
	case desc.First:
		var lastErr error
		for _, alt := range it.Alternatives {
			curSnap, parsedSnap := *cur, *p
			err := parseItems(p, cur, alt)
			if err == nil {
				return nil
			}
			*cur, *p = curSnap, parsedSnap
			lastErr = err
		}
		return lastErr
	default:
		return fmt.Errorf("unknown format item %T", it)
	}
}
