package units

// DataScale tags the single linear family of data-size units. The
// family reference is the bit, so decimal bits, decimal bytes and
// binary bytes all interconvert directly.
type DataScale struct{}

// Decimal bit units, 10³ apart.

// Bit is the fundamental data unit.
type Bit struct{}

func (Bit) Symbol() string            { return "b" }
func (Bit) ScaleIn(DataScale) float64 { return 1 }

// Kilobit is 10³ bits.
type Kilobit struct{}

func (Kilobit) Symbol() string            { return "Kb" }
func (Kilobit) ScaleIn(DataScale) float64 { return 1_000 }

// Megabit is 10⁶ bits.
type Megabit struct{}

func (Megabit) Symbol() string            { return "Mb" }
func (Megabit) ScaleIn(DataScale) float64 { return 1_000_000 }

// Gigabit is 10⁹ bits.
type Gigabit struct{}

func (Gigabit) Symbol() string            { return "Gb" }
func (Gigabit) ScaleIn(DataScale) float64 { return 1_000_000_000 }

// Terabit is 10¹² bits.
type Terabit struct{}

func (Terabit) Symbol() string            { return "Tb" }
func (Terabit) ScaleIn(DataScale) float64 { return 1_000_000_000_000 }

// Petabit is 10¹⁵ bits.
type Petabit struct{}

func (Petabit) Symbol() string            { return "Pb" }
func (Petabit) ScaleIn(DataScale) float64 { return 1_000_000_000_000_000 }

// Exabit is 10¹⁸ bits.
type Exabit struct{}

func (Exabit) Symbol() string            { return "Eb" }
func (Exabit) ScaleIn(DataScale) float64 { return 1_000_000_000_000_000_000 }

// Zettabit is 10²¹ bits.
type Zettabit struct{}

func (Zettabit) Symbol() string            { return "Zb" }
func (Zettabit) ScaleIn(DataScale) float64 { return 1_000_000_000_000_000_000_000 }

// Yottabit is 10²⁴ bits.
type Yottabit struct{}

func (Yottabit) Symbol() string            { return "Yb" }
func (Yottabit) ScaleIn(DataScale) float64 { return 1_000_000_000_000_000_000_000_000 }

// Decimal byte units: 8 bits, then 10³ apart.

// Byte is 8 bits.
type Byte struct{}

func (Byte) Symbol() string            { return "B" }
func (Byte) ScaleIn(DataScale) float64 { return 8 }

// Kilobyte is 10³ bytes.
type Kilobyte struct{}

func (Kilobyte) Symbol() string            { return "KB" }
func (Kilobyte) ScaleIn(DataScale) float64 { return 8_000 }

// Megabyte is 10⁶ bytes.
type Megabyte struct{}

func (Megabyte) Symbol() string            { return "MB" }
func (Megabyte) ScaleIn(DataScale) float64 { return 8_000_000 }

// Gigabyte is 10⁹ bytes.
type Gigabyte struct{}

func (Gigabyte) Symbol() string            { return "GB" }
func (Gigabyte) ScaleIn(DataScale) float64 { return 8_000_000_000 }

// Terabyte is 10¹² bytes.
type Terabyte struct{}

func (Terabyte) Symbol() string            { return "TB" }
func (Terabyte) ScaleIn(DataScale) float64 { return 8_000_000_000_000 }

// Petabyte is 10¹⁵ bytes.
type Petabyte struct{}

func (Petabyte) Symbol() string            { return "PB" }
func (Petabyte) ScaleIn(DataScale) float64 { return 8_000_000_000_000_000 }

// Exabyte is 10¹⁸ bytes.
type Exabyte struct{}

func (Exabyte) Symbol() string            { return "EB" }
func (Exabyte) ScaleIn(DataScale) float64 { return 8_000_000_000_000_000_000 }

// Zettabyte is 10²¹ bytes.
type Zettabyte struct{}

func (Zettabyte) Symbol() string            { return "ZB" }
func (Zettabyte) ScaleIn(DataScale) float64 { return 8_000_000_000_000_000_000_000 }

// Yottabyte is 10²⁴ bytes.
type Yottabyte struct{}

func (Yottabyte) Symbol() string            { return "YB" }
func (Yottabyte) ScaleIn(DataScale) float64 { return 8_000_000_000_000_000_000_000_000 }

// Binary byte units, 2¹⁰ apart.

// Kibibyte is 2¹⁰ bytes.
type Kibibyte struct{}

func (Kibibyte) Symbol() string            { return "KiB" }
func (Kibibyte) ScaleIn(DataScale) float64 { return 8_192 }

// Mebibyte is 2²⁰ bytes.
type Mebibyte struct{}

func (Mebibyte) Symbol() string            { return "MiB" }
func (Mebibyte) ScaleIn(DataScale) float64 { return 8_388_608 }

// Gibibyte is 2³⁰ bytes.
type Gibibyte struct{}

func (Gibibyte) Symbol() string            { return "GiB" }
func (Gibibyte) ScaleIn(DataScale) float64 { return 8_589_934_592 }

// Tebibyte is 2⁴⁰ bytes.
type Tebibyte struct{}

func (Tebibyte) Symbol() string            { return "TiB" }
func (Tebibyte) ScaleIn(DataScale) float64 { return 8_796_093_022_208 }

// Pebibyte is 2⁵⁰ bytes.
type Pebibyte struct{}

func (Pebibyte) Symbol() string            { return "PiB" }
func (Pebibyte) ScaleIn(DataScale) float64 { return 9_007_199_254_740_992 }

// Exbibyte is 2⁶⁰ bytes.
type Exbibyte struct{}

func (Exbibyte) Symbol() string            { return "EiB" }
func (Exbibyte) ScaleIn(DataScale) float64 { return 9_223_372_036_854_775_808 }

// Zebibyte is 2⁷⁰ bytes.
type Zebibyte struct{}

func (Zebibyte) Symbol() string            { return "ZiB" }
func (Zebibyte) ScaleIn(DataScale) float64 { return 9_444_732_965_739_290_427_392 }

// Yobibyte is 2⁸⁰ bytes.
type Yobibyte struct{}

func (Yobibyte) Symbol() string            { return "YiB" }
func (Yobibyte) ScaleIn(DataScale) float64 { return 9_671_406_556_917_033_397_649_408 }
