package desc

import "strconv"

// ---------------------------------------------------------------------------
// Component/modifier table
// ---------------------------------------------------------------------------

// modifierDef describes one legal modifier for a component: the values it
// accepts, its default, and whether the description must supply it. A nil
// values slice means the value is a positive decimal integer.
type modifierDef struct {
	values   []string
	def      string
	required bool
}

func (d modifierDef) accepts(value string) bool {
	if d.values == nil {
		n, err := strconv.Atoi(value)
		return err == nil && n > 0
	}
	for _, v := range d.values {
		if v == value {
			return true
		}
	}
	return false
}

// componentDef binds a component kind to its legal modifiers.
type componentDef struct {
	kind Kind
	mods map[string]modifierDef
}

var (
	paddingMod       = modifierDef{values: []string{"zero", "space", "none"}, def: "zero"}
	signMod          = modifierDef{values: []string{"automatic", "mandatory"}, def: "automatic"}
	caseSensitiveMod = modifierDef{values: []string{"true", "false"}, def: "true"}
)

// components is the static registry consulted by the grammar compiler for
// validation and by both interpreters for default resolution. Keys are
// component names; lookups are ASCII case-insensitive.
var components = map[string]componentDef{
	"day": {KindDay, map[string]modifierDef{
		"padding": paddingMod,
	}},
	"end": {KindEnd, map[string]modifierDef{
		"trailing_input": {values: []string{"prohibit", "discard"}, def: "prohibit"},
	}},
	"hour": {KindHour, map[string]modifierDef{
		"padding": paddingMod,
		"repr":    {values: []string{"24", "12"}, def: "24"},
	}},
	"ignore": {KindIgnore, map[string]modifierDef{
		"count": {required: true},
	}},
	"minute": {KindMinute, map[string]modifierDef{
		"padding": paddingMod,
	}},
	"month": {KindMonth, map[string]modifierDef{
		"padding":        paddingMod,
		"repr":           {values: []string{"numerical", "long", "short"}, def: "numerical"},
		"case_sensitive": caseSensitiveMod,
	}},
	"offset_hour": {KindOffsetHour, map[string]modifierDef{
		"padding": paddingMod,
		"sign":    signMod,
	}},
	"offset_minute": {KindOffsetMinute, map[string]modifierDef{
		"padding": paddingMod,
	}},
	"offset_second": {KindOffsetSecond, map[string]modifierDef{
		"padding": paddingMod,
	}},
	"ordinal": {KindOrdinal, map[string]modifierDef{
		"padding": paddingMod,
	}},
	"period": {KindPeriod, map[string]modifierDef{
		"case":           {values: []string{"upper", "lower"}, def: "upper"},
		"case_sensitive": caseSensitiveMod,
	}},
	"second": {KindSecond, map[string]modifierDef{
		"padding": paddingMod,
	}},
	"subsecond": {KindSubsecond, map[string]modifierDef{
		"digits": {
			values: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "1+"},
			def:    "1+",
		},
	}},
	"unix_timestamp": {KindUnixTimestamp, map[string]modifierDef{
		"precision": {
			values: []string{"second", "millisecond", "microsecond", "nanosecond"},
			def:    "second",
		},
		"sign": signMod,
	}},
	"weekday": {KindWeekday, map[string]modifierDef{
		"repr":           {values: []string{"short", "long", "sunday", "monday"}, def: "long"},
		"one_indexed":    {values: []string{"true", "false"}, def: "true"},
		"case_sensitive": caseSensitiveMod,
	}},
	"week_number": {KindWeekNumber, map[string]modifierDef{
		"padding": paddingMod,
		"repr":    {values: []string{"iso", "sunday", "monday"}, def: "iso"},
	}},
	"year": {KindYear, map[string]modifierDef{
		"padding": paddingMod,
		"repr":    {values: []string{"full", "century", "last_two"}, def: "full"},
		"range":   {values: []string{"standard", "extended"}, def: "extended"},
		"base":    {values: []string{"calendar", "iso_week"}, def: "calendar"},
		"sign":    signMod,
	}},
}

// defsByKind indexes the registry by kind for default resolution.
var defsByKind = func() map[Kind]componentDef {
	m := make(map[Kind]componentDef, len(components))
	for _, def := range components {
		m[def.kind] = def
	}
	return m
}()

func lookupComponent(name string) (componentDef, bool) {
	def, ok := components[name]
	return def, ok
}

// ---------------------------------------------------------------------------
// Modifier accessors: explicit value or table default
// ---------------------------------------------------------------------------

// Mod returns the effective value of a modifier: the value written in the
// description if present, otherwise the table default for this kind.
func (c Component) Mod(key string) string {
	if v, ok := c.Mods[key]; ok {
		return v
	}
	return defsByKind[c.Kind].mods[key].def
}

// Padding controls numeric field padding.
type Padding uint8

const (
	PadZero Padding = iota
	PadSpace
	PadNone
)

// Padding returns the effective padding modifier.
func (c Component) Padding() Padding {
	switch c.Mod("padding") {
	case "space":
		return PadSpace
	case "none":
		return PadNone
	default:
		return PadZero
	}
}

// SignMandatory reports whether the sign modifier forces an explicit sign.
func (c Component) SignMandatory() bool {
	return c.Mod("sign") == "mandatory"
}

// CaseSensitive reports the effective case_sensitive modifier.
func (c Component) CaseSensitive() bool {
	return c.Mod("case_sensitive") != "false"
}

// Repr returns the effective repr modifier, e.g. "12" for an hour component
// or "long" for a weekday.
func (c Component) Repr() string { return c.Mod("repr") }

// Count returns the ignore component's byte count. The grammar guarantees
// the modifier is present and a positive integer.
func (c Component) Count() int {
	n, _ := strconv.Atoi(c.Mod("count"))
	return n
}

// Digits returns the subsecond digits modifier: "1" through "9", or "1+".
func (c Component) Digits() string { return c.Mod("digits") }
