package measure_test

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/measure"
	"github.com/katalvlaran/measure/units"
)

// secondToHour and hourToSecond are the family witnesses used across
// this file; constructing them is the whole declaration cost.
var (
	secondToHour = measure.Linear[units.Second, units.Hour, units.TimeScale]()
	hourToSecond = measure.Linear[units.Hour, units.Second, units.TimeScale]()
)

// TestIdentity verifies the implicit reflexive relation: converting a
// quantity into its own unit is an exact no-op.
func TestIdentity(t *testing.T) {
	id := measure.Identity[units.Hour]()

	q := measure.New[units.Hour](42.42)
	assert.Equal(t, 42.42, measure.Convert(q, id).Value(), "self-conversion must be exact")
}

// TestLinear_ReflexiveMatchesIdentity checks that the family's own
// reflexive relation (Hour→Hour through TimeScale) agrees exactly with
// the generic Identity, so the two defaults can never conflict or
// double-apply.
func TestLinear_ReflexiveMatchesIdentity(t *testing.T) {
	self := measure.Linear[units.Hour, units.Hour, units.TimeScale]()
	id := measure.Identity[units.Hour]()

	for _, v := range []float64{0, 1, -3.5, 42.42, 1e9} {
		assert.Equal(t, id.Apply(v), self.Apply(v), "family self-relation must equal Identity at %v", v)
		assert.Equal(t, v, self.Apply(v), "family self-relation must be exact at %v", v)
	}
}

// TestLinear_TimeFamily verifies the declared scales directly:
// seconds↔minutes↔hours in every direction.
func TestLinear_TimeFamily(t *testing.T) {
	assert.Equal(t, 2.0, secondToHour.Apply(7200), "7200s = 2h")
	assert.Equal(t, 7200.0, hourToSecond.Apply(2), "2h = 7200s")

	minuteToHour := measure.Linear[units.Minute, units.Hour, units.TimeScale]()
	assert.InDelta(t, 1.5, minuteToHour.Apply(90), tolerance, "90min = 1.5h")

	hourToMinute := measure.Linear[units.Hour, units.Minute, units.TimeScale]()
	assert.Equal(t, 90.0, hourToMinute.Apply(1.5), "1.5h = 90min")
}

// TestLinear_FamilyRoundTrip verifies that every time-family pairing
// reproduces the input after a there-and-back conversion, within the
// declared tolerance.
func TestLinear_FamilyRoundTrip(t *testing.T) {
	minuteToSecond := measure.Linear[units.Minute, units.Second, units.TimeScale]()
	secondToMinute := measure.Linear[units.Second, units.Minute, units.TimeScale]()

	roundTrips := []struct {
		name string
		fn   func(float64) float64
	}{
		{"s->h->s", func(v float64) float64 { return hourToSecond.Apply(secondToHour.Apply(v)) }},
		{"h->s->h", func(v float64) float64 { return secondToHour.Apply(hourToSecond.Apply(v)) }},
		{"min->s->min", func(v float64) float64 { return secondToMinute.Apply(minuteToSecond.Apply(v)) }},
		{"s->min->s", func(v float64) float64 { return minuteToSecond.Apply(secondToMinute.Apply(v)) }},
	}

	for _, rt := range roundTrips {
		for _, v := range []float64{0, 1, -42.5, 1234.75, 99999} {
			assert.InDelta(t, v, rt.fn(v), tolerance, "%s must round-trip %v", rt.name, v)
		}
	}
}

// TestAdd_HourPlusSecond pins the canonical worked case:
// 2h + 3600s = 3h, while 3600s + 2h = 10800s — the result unit is
// always the left operand's.
func TestAdd_HourPlusSecond(t *testing.T) {
	a := measure.New[units.Hour](2)
	b := measure.New[units.Second](3600)

	sum := measure.Add(a, b, secondToHour)
	assert.InDelta(t, 3.0, sum.Value(), tolerance, "2h + 3600s = 3h")

	sum2 := measure.Add(b, a, hourToSecond)
	assert.InDelta(t, 10800.0, sum2.Value(), tolerance, "3600s + 2h = 10800s")
}

// TestSub_CrossUnit verifies mixed-unit subtraction in both orders.
func TestSub_CrossUnit(t *testing.T) {
	a := measure.New[units.Hour](2)
	b := measure.New[units.Second](1800)

	diff := measure.Sub(a, b, secondToHour)
	assert.InDelta(t, 1.5, diff.Value(), tolerance, "2h - 1800s = 1.5h")

	diff2 := measure.Sub(b, a, hourToSecond)
	assert.InDelta(t, -5400.0, diff2.Value(), tolerance, "1800s - 2h = -5400s")
}

// TestAddInPlace_CrossUnit verifies the in-place mixed-unit variants.
func TestAddInPlace_CrossUnit(t *testing.T) {
	q := measure.New[units.Hour](1)

	measure.AddInPlace(&q, measure.New[units.Second](7200), secondToHour)
	assert.InDelta(t, 3.0, q.Value(), tolerance, "1h += 7200s → 3h")

	measure.SubInPlace(&q, measure.New[units.Second](3600), secondToHour)
	assert.InDelta(t, 2.0, q.Value(), tolerance, "3h -= 3600s → 2h")
}

// TestCompare_CrossUnit verifies Equal, Less and Compare across units;
// the comparison happens in the left operand's unit.
func TestCompare_CrossUnit(t *testing.T) {
	oneHour := measure.New[units.Hour](1)

	assert.True(t, measure.Equal(oneHour, measure.New[units.Second](3600), secondToHour),
		"1h == 3600s")
	assert.True(t, measure.Less(oneHour, measure.New[units.Second](7200), secondToHour),
		"1h < 7200s")
	assert.False(t, measure.Less(oneHour, measure.New[units.Second](1800), secondToHour),
		"1h is not < 1800s")
	assert.Equal(t, 1, measure.Compare(oneHour, measure.New[units.Second](1800), secondToHour),
		"1h > 1800s")
	assert.Equal(t, 0, measure.Compare(oneHour, measure.New[units.Second](3600), secondToHour),
		"1h == 3600s under Compare")
}

// TestAdd_DifferentUnitProperty property-checks mixed-unit addition:
// hours + seconds lands in hours with the seconds divided by 3600, and
// the flipped order lands in seconds with the hours multiplied out.
func TestAdd_DifferentUnitProperty(t *testing.T) {
	prop1 := func(v1, v2 float64) bool {
		r := measure.Add(measure.New[units.Hour](v1), measure.New[units.Second](v2), secondToHour)

		return math.Abs(r.Value()-(v1+v2/3600)) < tolerance
	}
	require.NoError(t, quick.Check(prop1, quickCfg))

	prop2 := func(v1, v2 float64) bool {
		r := measure.Add(measure.New[units.Second](v2), measure.New[units.Hour](v1), hourToSecond)

		return math.Abs(r.Value()-(v1*3600+v2)) < tolerance
	}
	require.NoError(t, quick.Check(prop2, quickCfg))
}

// TestSub_DifferentUnitProperty is the subtraction counterpart.
func TestSub_DifferentUnitProperty(t *testing.T) {
	prop1 := func(v1, v2 float64) bool {
		r := measure.Sub(measure.New[units.Hour](v1), measure.New[units.Second](v2), secondToHour)

		return math.Abs(r.Value()-(v1-v2/3600)) < tolerance
	}
	require.NoError(t, quick.Check(prop1, quickCfg))

	prop2 := func(v1, v2 float64) bool {
		r := measure.Sub(measure.New[units.Second](v2), measure.New[units.Hour](v1), hourToSecond)

		return math.Abs(r.Value()-(v2-v1*3600)) < tolerance
	}
	require.NoError(t, quick.Check(prop2, quickCfg))
}
