package measure

import "fmt"

// Quantity is the value of a physical property measured in unit U: a
// single float64 magnitude whose unit is part of the type, not a field.
// Quantities are immutable values — copy freely, share across
// goroutines, compare by converting. The zero value is 0 of U.
//
// Same-unit arithmetic lives on the methods below and needs no
// conversion. Mixed-unit arithmetic goes through the package-level
// functions (Add, Sub, Equal, Less, Compare, Convert, …), each of which
// takes the Conversion witness that proves the pair is related; an
// unrelated pair has no witness and the call does not compile.
type Quantity[U Unit] struct {
	value float64
}

// New returns a quantity of v in unit U.
func New[U Unit](v float64) Quantity[U] {
	return Quantity[U]{value: v}
}

// Value returns the raw magnitude, expressed in U.
func (q Quantity[U]) Value() float64 {
	return q.value
}

// String renders "<magnitude> <symbol>" using Go's default float
// formatting, e.g. "42.42 h" or "1.5 Kb/s".
func (q Quantity[U]) String() string {
	return fmt.Sprintf("%v %s", q.value, SymbolOf[U]())
}

// Add returns q + o for two quantities of the same unit.
func (q Quantity[U]) Add(o Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value + o.value}
}

// Sub returns q - o for two quantities of the same unit.
func (q Quantity[U]) Sub(o Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value - o.value}
}

// AddInPlace adds o into q.
func (q *Quantity[U]) AddInPlace(o Quantity[U]) {
	q.value += o.value
}

// SubInPlace subtracts o from q.
func (q *Quantity[U]) SubInPlace(o Quantity[U]) {
	q.value -= o.value
}

// Mul scales q by a dimensionless factor; the unit never changes.
func (q Quantity[U]) Mul(k float64) Quantity[U] {
	return Quantity[U]{value: q.value * k}
}

// Div scales q by 1/k; the unit never changes.
func (q Quantity[U]) Div(k float64) Quantity[U] {
	return Quantity[U]{value: q.value / k}
}

// MulInPlace scales q by k.
func (q *Quantity[U]) MulInPlace(k float64) {
	q.value *= k
}

// DivInPlace scales q by 1/k.
func (q *Quantity[U]) DivInPlace(k float64) {
	q.value /= k
}

// Equal reports q == o by exact float64 comparison.
func (q Quantity[U]) Equal(o Quantity[U]) bool {
	return q.value == o.value
}

// Less reports q < o.
func (q Quantity[U]) Less(o Quantity[U]) bool {
	return q.value < o.value
}

// Compare returns -1, 0 or +1 as q is less than, equal to or greater
// than o.
func (q Quantity[U]) Compare(o Quantity[U]) int {
	switch {
	case q.value < o.value:
		return -1
	case q.value > o.value:
		return 1
	default:
		return 0
	}
}

// Convert produces the equivalent of q in the target unit T, through
// the declared witness.
func Convert[F, T Unit](q Quantity[F], via Conversion[F, T]) Quantity[T] {
	return via.Convert(q)
}

// Add returns a + b expressed in the unit of a. The right operand is
// converted into L first; the result unit is always the left operand's
// — no unit inference or widening occurs.
func Add[L, R Unit](a Quantity[L], b Quantity[R], via Conversion[R, L]) Quantity[L] {
	return Quantity[L]{value: a.value + via.apply(b.value)}
}

// Sub returns a - b expressed in the unit of a.
func Sub[L, R Unit](a Quantity[L], b Quantity[R], via Conversion[R, L]) Quantity[L] {
	return Quantity[L]{value: a.value - via.apply(b.value)}
}

// AddInPlace adds b, converted into L, into *a.
func AddInPlace[L, R Unit](a *Quantity[L], b Quantity[R], via Conversion[R, L]) {
	a.value += via.apply(b.value)
}

// SubInPlace subtracts b, converted into L, from *a.
func SubInPlace[L, R Unit](a *Quantity[L], b Quantity[R], via Conversion[R, L]) {
	a.value -= via.apply(b.value)
}

// Equal reports whether a and b denote the same magnitude, comparing in
// the unit of a by exact float64 equality.
func Equal[L, R Unit](a Quantity[L], b Quantity[R], via Conversion[R, L]) bool {
	return a.value == via.apply(b.value)
}

// Less reports a < b, comparing in the unit of a.
func Less[L, R Unit](a Quantity[L], b Quantity[R], via Conversion[R, L]) bool {
	return a.value < via.apply(b.value)
}

// Compare returns -1, 0 or +1 ordering a against b in the unit of a.
func Compare[L, R Unit](a Quantity[L], b Quantity[R], via Conversion[R, L]) int {
	return a.Compare(Quantity[L]{value: via.apply(b.value)})
}

// Unalias rewraps a quantity of alias unit A as its underlying unit U.
// The magnitude is untouched; only the tag changes. U is named
// explicitly since it cannot be inferred from the argument:
//
//	measure.Unalias[measure.Ratio[units.Kilobit, units.Second]](kbps)
func Unalias[U Unit, A AliasOf[U]](q Quantity[A]) Quantity[U] {
	return Quantity[U]{value: q.value}
}

// AsAlias rewraps a quantity of unit U under an alias A of U, keeping
// the magnitude untouched:
//
//	measure.AsAlias[units.Kbps](rate)
func AsAlias[A AliasOf[U], U Unit](q Quantity[U]) Quantity[A] {
	return Quantity[A]{value: q.value}
}
