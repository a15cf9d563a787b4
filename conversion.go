package measure

// Conversion is a declared, directed relation turning a magnitude
// expressed in From into the equivalent magnitude in To. It is a typed
// witness: holding a Conversion[From, To] is the proof that the
// conversion was declared, and every constructor in this package checks
// its preconditions in the type system. A pair of units with no way to
// construct a witness is a pair whose arithmetic does not compile —
// there is no runtime registry and no conversion-not-found error.
//
// Obtain values through Linear, Identity, Nonlinear, NonlinearPair,
// LinearRatio, FromAlias or IntoAlias. The zero value is invalid and
// must not be used.
type Conversion[From, To Unit] struct {
	apply func(float64) float64
}

// Apply transforms a raw magnitude expressed in From into To.
func (c Conversion[From, To]) Apply(v float64) float64 {
	return c.apply(v)
}

// Convert applies c to a quantity, producing the equivalent quantity
// tagged with To.
func (c Conversion[From, To]) Convert(q Quantity[From]) Quantity[To] {
	return Quantity[To]{value: c.apply(q.value)}
}

// Linear returns the conversion between two members of the linear
// family F. Any ordered pair within one family instantiates — including
// From == To, which degenerates to the identity — so a family of N
// declared members carries the full N*N directed relation set. A pair
// drawn from two different families does not satisfy the constraints
// and fails to compile; cross-family conversion requires either ratio
// synthesis (LinearRatio) or an explicit Nonlinear declaration.
//
// The transform is value * scale(From) / scale(To), evaluated in that
// order to keep exact results for whole-factor conversions.
func Linear[From, To LinearIn[F], F any]() Conversion[From, To] {
	var (
		from From
		to   To
		fam  F
	)
	sf, st := from.ScaleIn(fam), to.ScaleIn(fam)

	return Conversion[From, To]{apply: func(v float64) float64 {
		return v * sf / st
	}}
}

// Identity returns the reflexive conversion of U. It exists for every
// unit without any declaration — self-conversion is always a no-op —
// and is mainly useful to satisfy a witness parameter in generic code
// operating on a single unit.
func Identity[U Unit]() Conversion[U, U] {
	return Conversion[U, U]{apply: func(v float64) float64 {
		return v
	}}
}

// Nonlinear returns a conversion for exactly the ordered pair
// (From, To) computed by fn. Nothing is assumed or checked about fn:
// no inverse is derived, no transitivity applies, and the relation
// never participates in ratio synthesis (it carries no ScaleIn proof).
// Round-trip accuracy against the opposite direction is the declarer's
// responsibility and belongs in tests.
func Nonlinear[From, To Unit](fn func(float64) float64) Conversion[From, To] {
	return Conversion[From, To]{apply: fn}
}

// NonlinearPair declares both directions between A and B at once, each
// from its own independent closure. The two closures are not required
// to be inverses; see Nonlinear.
func NonlinearPair[A, B Unit](ab, ba func(float64) float64) (Conversion[A, B], Conversion[B, A]) {
	return Nonlinear[A, B](ab), Nonlinear[B, A](ba)
}

// FromAlias lifts a conversion out of an alias: given the relation from
// A's underlying unit U into T, it returns the relation from A itself
// into T. An alias holds the same magnitude as its underlying unit, so
// this is pure delegation — the transform is reused unchanged.
//
// A is not inferrable from the argument and is named explicitly:
//
//	measure.FromAlias[units.Kbps](via)
func FromAlias[A AliasOf[U], T, U Unit](via Conversion[U, T]) Conversion[A, T] {
	return Conversion[A, T]{apply: via.apply}
}

// IntoAlias lifts a conversion into an alias: given the relation from F
// into A's underlying unit U, it returns the relation from F into A
// itself. The converted magnitude lands in the underlying unit and is
// rewrapped under the alias tag unchanged.
//
//	measure.IntoAlias[units.Kbps](via)
func IntoAlias[A AliasOf[U], F, U Unit](via Conversion[F, U]) Conversion[F, A] {
	return Conversion[F, A]{apply: via.apply}
}
