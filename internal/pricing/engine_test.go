package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photographerTable(t *testing.T) PriceTable {
	t.Helper()
	table, err := NewPriceTable(500, map[ServiceID]int64{ServicePhotographer: 2500})
	require.NoError(t, err)
	return table
}

func TestCompute_Scenario(t *testing.T) {
	in := BookingInputs{GuestCount: 10, DurationHours: 3, SelectedServices: []ServiceID{ServicePhotographer}}

	got := Compute(in, photographerTable(t))

	assert.Equal(t, int64(15000), got.BaseCost)
	assert.Equal(t, int64(2500), got.ServicesCost)
	assert.Equal(t, int64(17500), got.TotalCost)
}

func TestCompute_MatchesFormula(t *testing.T) {
	table := DefaultPriceTable()
	all := table.Services()

	for g := int64(0); g <= 12; g += 3 {
		for d := int64(1); d <= 8; d++ {
			for mask := 0; mask < 1<<len(all); mask++ {
				var selected []ServiceID
				var want int64
				for i, id := range all {
					if mask&(1<<i) != 0 {
						selected = append(selected, id)
						price, _ := table.Price(id)
						want += price
					}
				}

				got := Compute(BookingInputs{GuestCount: g, DurationHours: d, SelectedServices: selected}, table)

				assert.Equal(t, g*table.BasePerGuestHour()*d+want, got.TotalCost)
				assert.Equal(t, got.BaseCost+got.ServicesCost, got.TotalCost)
			}
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := BookingInputs{GuestCount: 7, DurationHours: 4, SelectedServices: []ServiceID{ServiceCake, ServiceAnimator}}
	table := DefaultPriceTable()

	assert.Equal(t, Compute(in, table), Compute(in, table))
}

func TestCompute_UnknownServiceContributesZero(t *testing.T) {
	in := BookingInputs{GuestCount: 1, DurationHours: 2, SelectedServices: []ServiceID{"fireworks", ServiceCake}}

	got := Compute(in, DefaultPriceTable())

	assert.Equal(t, int64(1500), got.ServicesCost)
	assert.Equal(t, int64(1000), got.BaseCost)
	assert.Equal(t, int64(2500), got.TotalCost)
}

func TestCompute_ZeroTable(t *testing.T) {
	got := Compute(BookingInputs{GuestCount: 5, DurationHours: 2, SelectedServices: []ServiceID{ServiceCake}}, PriceTable{})

	assert.Equal(t, PriceBreakdown{}, got)
}

func TestCompute_SaturatesInsteadOfWrapping(t *testing.T) {
	in := ParseInputs("9223372036854775807", "3", []string{"cake"})

	got := Compute(in, DefaultPriceTable())

	assert.Equal(t, int64(math.MaxInt64), got.BaseCost)
	assert.Equal(t, int64(1500), got.ServicesCost)
	assert.Equal(t, int64(math.MaxInt64), got.TotalCost)
}

func TestCompute_LargeButRepresentable(t *testing.T) {
	got := Compute(BookingInputs{GuestCount: 1_000_000, DurationHours: 8}, DefaultPriceTable())

	assert.Equal(t, int64(4_000_000_000), got.BaseCost)
	assert.Equal(t, got.BaseCost, got.TotalCost)
}

func TestCompute_CoercesOutOfRangeInputs(t *testing.T) {
	got := Compute(BookingInputs{GuestCount: -5, DurationHours: -3}, DefaultPriceTable())
	assert.Equal(t, int64(0), got.TotalCost)

	got = Compute(BookingInputs{GuestCount: 2, DurationHours: 0}, DefaultPriceTable())
	assert.Equal(t, int64(2000), got.BaseCost)
}

func TestParseInputs_Defaults(t *testing.T) {
	in := ParseInputs("", "", nil)

	assert.Equal(t, int64(0), in.GuestCount)
	assert.Equal(t, int64(2), in.DurationHours)
	assert.Empty(t, in.SelectedServices)
}

func TestParseInputs_NonNumeric(t *testing.T) {
	in := ParseInputs("many", "long", []string{"cake", " ", ""})

	assert.Equal(t, int64(0), in.GuestCount)
	assert.Equal(t, int64(2), in.DurationHours)
	assert.Equal(t, []ServiceID{ServiceCake}, in.SelectedServices)
}

func TestParseGuestCount(t *testing.T) {
	cases := map[string]int64{
		"10":        10,
		" 12 ":      12,
		"15 guests": 15,
		"-4":        0,
		"x7":        0,
		"+3":        3,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseGuestCount(raw), raw)
	}
}

func TestParseDuration(t *testing.T) {
	cases := map[string]int64{
		"3":       3,
		"0":       2,
		"-1":      2,
		"4 hours": 4,
		"":        2,
		"abc":     2,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseDuration(raw), raw)
	}
}

func TestNewPriceTable_RejectsNegative(t *testing.T) {
	_, err := NewPriceTable(-1, nil)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewPriceTable(100, map[ServiceID]int64{ServiceCake: -5})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestNewPriceTable_CopiesServices(t *testing.T) {
	services := map[ServiceID]int64{ServiceCake: 1500}
	table, err := NewPriceTable(100, services)
	require.NoError(t, err)

	services[ServiceCake] = 1

	price, ok := table.Price(ServiceCake)
	assert.True(t, ok)
	assert.Equal(t, int64(1500), price)
}

func TestDefaultPriceTable(t *testing.T) {
	table := DefaultPriceTable()

	assert.Equal(t, int64(500), table.BasePerGuestHour())
	assert.Equal(t, []ServiceID{ServiceAnimator, ServiceCake, ServiceDecorations, ServicePhotographer}, table.Services())
	assert.False(t, table.Known("fireworks"))
}
