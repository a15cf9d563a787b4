package measure

// Unit identifies a unit of measure. Implementations are zero-sized tag
// types; no value of a Unit is ever stored — units exist purely to
// parametrize Quantity and to select, through the type system, which
// conversions are possible.
//
// Declaring a new unit is one type and one method:
//
//	type Fortnight struct{}
//
//	func (Fortnight) Symbol() string { return "fn" }
//
// A unit's canonical form is itself unless it also implements AliasOf.
type Unit interface {
	// Symbol returns the display symbol printed after the magnitude,
	// e.g. "s" for seconds or "Kb/s" for a kilobit-per-second ratio.
	Symbol() string
}

// SymbolOf returns the display symbol of U without needing a value in
// hand. Handy in generic code where only the type parameter is known.
func SymbolOf[U Unit]() string {
	var u U

	return u.Symbol()
}

// LinearIn marks a unit as a member of the linear family tagged by the
// zero-sized type F. ScaleIn reports the magnitude of one unit of the
// member relative to the family's common reference, so that for any two
// members From and To the conversion is exactly
//
//	value_in_To = value_in_From * scale(From) / scale(To)
//
// Declaring the family is declaring ScaleIn on each member:
//
//	type TimeScale struct{}
//
//	func (Second) ScaleIn(TimeScale) float64 { return 1 }
//	func (Minute) ScaleIn(TimeScale) float64 { return 60 }
//	func (Hour) ScaleIn(TimeScale) float64   { return 3600 }
//
// N member declarations establish all N*N directed conversions at once:
// every ordered pair, reflexive pairs included, instantiates through
// Linear. Because a type cannot carry two ScaleIn methods with different
// signatures, a unit belongs to at most one family, which keeps families
// independent of each other.
//
// ScaleIn doubles as the linearity proof: only units carrying it may
// enter ratio synthesis (LinearRatio). The compiler cannot verify the
// scale itself — a wrong constant silently skews every ratio conversion
// built from the family, so tests must probe each family's ratios
// numerically.
type LinearIn[F any] interface {
	Unit

	// ScaleIn returns the member's scale relative to the family
	// reference. The F argument is a tag and carries no data.
	ScaleIn(F) float64
}

// AliasOf marks a unit as an alias: a stand-in for exactly one
// underlying unit U (simple or composite), with its own display symbol.
// All conversion resolution delegates to U; the alias keeps no relation
// table of its own.
//
//	type Kbps struct{}
//
//	func (Kbps) Symbol() string { return "Kbps" }
//
//	func (Kbps) Canonical() measure.Ratio[Kilobit, Second] {
//		return measure.Ratio[Kilobit, Second]{}
//	}
//
// An alias of an alias is permitted; each Unalias / FromAlias /
// IntoAlias application peels one level.
type AliasOf[U Unit] interface {
	Unit

	// Canonical returns the underlying unit the alias stands for.
	// The result is a zero-sized tag; only its type matters.
	Canonical() U
}
