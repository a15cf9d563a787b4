package measure

// Ratio is a composite unit formed as one unit per another, e.g.
// Ratio[Kilobit, Second] is kilobits per second. It is itself a Unit:
// zero-sized, usable anywhere a unit is expected, and displayed as
// "<numerator symbol>/<denominator symbol>".
//
// Conversions between ratio units are synthesized by LinearRatio from
// the linear relations of their legs; a ratio never needs (and never
// has) relations declared on it directly.
type Ratio[N, D Unit] struct{}

// Symbol returns the concatenated "<N>/<D>" form, e.g. "Kb/s".
func (Ratio[N, D]) Symbol() string {
	var (
		n N
		d D
	)

	return n.Symbol() + "/" + d.Symbol()
}

// LinearRatio synthesizes the conversion from Ratio[N, D] into
// Ratio[N1, D1]. It exists iff N1 is linearly reachable from N within
// family NF and D1 from D within family DF — all four legs must carry
// the ScaleIn linearity proof, so a ratio built on a non-linear
// relation is a compile error rather than a silently wrong number.
//
// The synthesis needs no combined fraction table:
//
//  1. read the source magnitude as a value of N and convert it to N1;
//  2. convert a denominator reference of magnitude 1 from D to D1;
//  3. divide the first result by the second.
//
// Step 2 is only meaningful because the denominator relation is of the
// form value*k — which is exactly what the LinearIn constraints assert.
//
// No type argument is inferrable (the function takes no values), so a
// call names all six:
//
//	measure.LinearRatio[
//		units.Kilobit, units.Megabit,
//		units.Second, units.Hour,
//		units.DataScale, units.TimeScale,
//	]()
func LinearRatio[N, N1 LinearIn[NF], D, D1 LinearIn[DF], NF, DF any]() Conversion[Ratio[N, D], Ratio[N1, D1]] {
	num := Linear[N, N1, NF]()
	den := Linear[D, D1, DF]()

	// One source-denominator unit expressed in destination-denominator
	// units; constant for the life of the witness.
	ref := den.Apply(1)

	return Conversion[Ratio[N, D], Ratio[N1, D1]]{apply: func(v float64) float64 {
		return num.Apply(v) / ref
	}}
}
