package units

import "github.com/katalvlaran/measure"

// Transmission-speed aliases. Each is a friendly name over a
// bits-per-second ratio: it formats under its own symbol and delegates
// every conversion to the underlying Ratio[<bit unit>, Second].

// Bps is bits per second, an alias of Ratio[Bit, Second].
type Bps struct{}

func (Bps) Symbol() string { return "bps" }

func (Bps) Canonical() measure.Ratio[Bit, Second] {
	return measure.Ratio[Bit, Second]{}
}

// Kbps is kilobits per second, an alias of Ratio[Kilobit, Second].
type Kbps struct{}

func (Kbps) Symbol() string { return "Kbps" }

func (Kbps) Canonical() measure.Ratio[Kilobit, Second] {
	return measure.Ratio[Kilobit, Second]{}
}

// Mbps is megabits per second, an alias of Ratio[Megabit, Second].
type Mbps struct{}

func (Mbps) Symbol() string { return "Mbps" }

func (Mbps) Canonical() measure.Ratio[Megabit, Second] {
	return measure.Ratio[Megabit, Second]{}
}

// Gbps is gigabits per second, an alias of Ratio[Gigabit, Second].
type Gbps struct{}

func (Gbps) Symbol() string { return "Gbps" }

func (Gbps) Canonical() measure.Ratio[Gigabit, Second] {
	return measure.Ratio[Gigabit, Second]{}
}

// Tbps is terabits per second, an alias of Ratio[Terabit, Second].
type Tbps struct{}

func (Tbps) Symbol() string { return "Tbps" }

func (Tbps) Canonical() measure.Ratio[Terabit, Second] {
	return measure.Ratio[Terabit, Second]{}
}
