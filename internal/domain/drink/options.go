package drink

import (
	"github.com/shopspring/decimal"
)

// Defaults applied to zero-valued option fields.
const (
	DefaultTemperature = TemperatureHot
	DefaultVolumeMl    = 300
	DefaultPackaging   = PackagingInHouse
	DefaultTopping     = ToppingNone
	DefaultDecor       = DecorNone
	DefaultMilk        = MilkDairy
	DefaultSyrup       = SyrupNone

	SingleShotVolumeMl = 30
	DoubleShotVolumeMl = 60
)

// DefaultSyrupDose is the syrup dose used when none is given.
var DefaultSyrupDose = decimal.NewFromInt(1)

// Common holds the attributes shared by every variant. A zero field means
// "use the default": hot, 300ml (or the variant's own volume), in house, no
// additives, no topping, no decor.
type Common struct {
	Temperature Temperature
	VolumeMl    int
	Packaging   Packaging
	Additives   []Additive
	Topping     Topping
	Decor       Decor
}

// EspressoOptions configures NewEspresso. Volume defaults to 30ml for a
// single shot and 60ml for a double.
type EspressoOptions struct {
	Common
	DoubleShot bool
}

// CappuccinoOptions configures NewCappuccino. Milk defaults to dairy, syrup
// to none and the syrup dose to 1.
type CappuccinoOptions struct {
	Common
	Milk      MilkType
	Syrup     SyrupType
	SyrupDose decimal.Decimal
	ExtraFoam bool
}

// LatteOptions configures NewLatte. Milk defaults to dairy, syrup to none and
// the syrup dose to 1. LatteArt forces the decor to DecorLatteArt.
type LatteOptions struct {
	Common
	Milk      MilkType
	Syrup     SyrupType
	SyrupDose decimal.Decimal
	LatteArt  bool
}

// given marks fields whose zero value was set explicitly and must reach
// validation instead of being replaced by a default.
type given struct {
	volume bool
	dose   bool
}

func (c Common) apply(defaultVolume int, g given) *Drink {
	d := &Drink{
		temperature: c.Temperature,
		volumeMl:    c.VolumeMl,
		packaging:   c.Packaging,
		additives:   append([]Additive(nil), c.Additives...),
		topping:     c.Topping,
		decor:       c.Decor,
	}
	if d.temperature == "" {
		d.temperature = DefaultTemperature
	}
	if d.volumeMl == 0 && !g.volume {
		d.volumeMl = defaultVolume
	}
	if d.packaging == "" {
		d.packaging = DefaultPackaging
	}
	if d.topping == "" {
		d.topping = DefaultTopping
	}
	if d.decor == "" {
		d.decor = DefaultDecor
	}
	return d
}

func milkOrDefault(m MilkType) MilkType {
	if m == "" {
		return DefaultMilk
	}
	return m
}

func syrupOrDefault(s SyrupType) SyrupType {
	if s == "" {
		return DefaultSyrup
	}
	return s
}

func doseOrDefault(dose decimal.Decimal, g given) decimal.Decimal {
	if dose.IsZero() && !g.dose {
		return DefaultSyrupDose
	}
	return dose
}
