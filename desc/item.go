package desc

// ---------------------------------------------------------------------------
// Format items: the compiled instruction tree
// ---------------------------------------------------------------------------

// Item is the interface implemented by all compiled format items. A compiled
// sequence is immutable and may be shared read-only across concurrent render
// and parse calls.
type Item interface {
	item() // marker method
}

// Literal is a run of bytes emitted and matched verbatim.
type Literal struct {
	Text []byte
}

func (Literal) item() {}

// Component is a single date-time field together with its validated
// modifiers.
type Component struct {
	Kind Kind
	Mods Modifiers
}

func (Component) item() {}

// Optional is a group whose failure is swallowed rather than propagated:
// rendering skips the whole group when a component inside cannot be
// formatted, and parsing backtracks when the group does not match.
type Optional struct {
	Items []Item
}

func (Optional) item() {}

// First tries each alternative in order and commits to the first that
// succeeds. If every alternative fails, the last failure is reported.
type First struct {
	Alternatives [][]Item
}

func (First) item() {}

// Kind enumerates the supported components.
type Kind uint8

const (
	KindYear Kind = iota
	KindMonth
	KindDay
	KindOrdinal
	KindWeekNumber
	KindWeekday
	KindHour
	KindMinute
	KindSecond
	KindSubsecond
	KindPeriod
	KindOffsetHour
	KindOffsetMinute
	KindOffsetSecond
	KindUnixTimestamp
	KindIgnore
	KindEnd
)

var kindNames = [...]string{
	KindYear:          "year",
	KindMonth:         "month",
	KindDay:           "day",
	KindOrdinal:       "ordinal",
	KindWeekNumber:    "week_number",
	KindWeekday:       "weekday",
	KindHour:          "hour",
	KindMinute:        "minute",
	KindSecond:        "second",
	KindSubsecond:     "subsecond",
	KindPeriod:        "period",
	KindOffsetHour:    "offset_hour",
	KindOffsetMinute:  "offset_minute",
	KindOffsetSecond:  "offset_second",
	KindUnixTimestamp: "unix_timestamp",
	KindIgnore:        "ignore",
	KindEnd:           "end",
}

// String returns the component name as written in a description.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind resolves a component name back to its kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Modifiers holds the modifier values written explicitly in the description,
// keyed by modifier name with canonical (lowercased) values. Keys absent from
// the map resolve to the table defaults at execution time.
type Modifiers map[string]string
