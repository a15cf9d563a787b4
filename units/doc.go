// Package units is the concrete unit catalog built on measure's
// declaration surface: time units, data-size units (decimal bits and
// bytes plus binary bytes), and bandwidth aliases over data-per-time
// ratios.
//
// The catalog is pure data. Each unit is a zero-sized tag with a Symbol
// method; family membership is a ScaleIn method against the family tag
// (TimeScale or DataScale), which is all it takes for full pairwise
// conversion within the family:
//
//	toHours := measure.Linear[units.Second, units.Hour, units.TimeScale]()
//	fmt.Println(toHours.Apply(7200)) // 2
//
// All 26 data-size units share the single DataScale family, referenced
// in bits, so bits, bytes and binary bytes interconvert directly
// (1 Byte = 8 bits, 1 KiB = 8192 bits, …).
//
// Bandwidth units (Bps … Tbps) are aliases of Ratio[<bit unit>, Second]:
// they format under their own symbol but convert exactly as their
// underlying ratio does.
package units
