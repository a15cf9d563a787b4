// Package measure is a compile-time dimensional-analysis toolkit:
// physical quantities tagged with a unit type, where arithmetic between
// incompatible units either goes through a declared conversion or fails
// to compile.
//
// 🚀 What is measure?
//
//	A small, pure core that brings together:
//		• Unit descriptors: zero-sized tag types carrying a display symbol
//		• Linear families: one declaration, full pairwise connectivity
//		• Non-linear pairs: arbitrary conversion closures, declared per pair
//		• Ratio units: data-per-time and friends, synthesized from linear legs
//		• Alias units: a friendly name over a composite unit, pure delegation
//		• Quantity values: immutable float64 magnitudes with generic operators
//
// ✨ Why choose measure?
//
//   - Compile-time safety — a missing conversion path is a build error,
//     never a runtime one; there is no conversion-not-found error value.
//   - Zero runtime machinery — no registries, no reflection, no lookup;
//     a conversion is a typed witness you either can or cannot construct.
//   - Pure Go — no cgo, no hidden deps; quantities are freely copyable and
//     safe to share across goroutines because nothing is mutable.
//
// The conversion surface in one glance:
//
//	Linear[From, To, Family]()      // any ordered pair within a linear family
//	Identity[U]()                   // the implicit reflexive relation
//	Nonlinear[From, To](fn)         // one directed pair, arbitrary closure
//	NonlinearPair[A, B](ab, ba)     // both directions at once
//	LinearRatio[N, N1, D, D1, …]()  // Ratio[N,D] → Ratio[N1,D1], linear legs only
//	FromAlias[A](via)               // lift a conversion out of an alias unit
//	IntoAlias[A](via)               // lift a conversion into an alias unit
//
// Quick example:
//
//	hours := measure.New[units.Hour](2)
//	secs := measure.New[units.Second](3600)
//	toHours := measure.Linear[units.Second, units.Hour, units.TimeScale]()
//	fmt.Println(measure.Add(hours, secs, toHours)) // 3 h
//
// The concrete catalog (seconds, bits, bytes, bandwidth aliases) lives in
// the units subpackage and is nothing but data declared through this
// surface.
package measure
