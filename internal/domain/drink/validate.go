package drink

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// MaxSyrupDose bounds the syrup dose. Doses carry at most
// MaxSyrupDosePlaces decimal places.
var MaxSyrupDose = decimal.NewFromInt(10)

const MaxSyrupDosePlaces = 3

func validate(d *Drink) error {
	if d.variant == nil {
		return invalid("", "drink has no variant")
	}
	kind := d.variant.Kind()

	if err := validateCommon(kind, d); err != nil {
		return err
	}

	switch v := d.variant.(type) {
	case Espresso:
		return validateEspresso(d)
	case Cappuccino:
		return validateMilky(KindCappuccino, v.Milk, v.Syrup, v.SyrupDose)
	case Latte:
		return validateMilky(KindLatte, v.Milk, v.Syrup, v.SyrupDose)
	default:
		return errors.Errorf("unsupported variant: %T", v)
	}
}

func validateCommon(kind Kind, d *Drink) error {
	if d.volumeMl <= 0 {
		return invalid(kind, "volume must be positive, got %dml", d.volumeMl)
	}
	if !d.temperature.Valid() {
		return invalid(kind, "unknown temperature %q", d.temperature)
	}
	if !d.packaging.Valid() {
		return invalid(kind, "unknown packaging %q", d.packaging)
	}
	if !d.topping.Valid() {
		return invalid(kind, "unknown topping %q", d.topping)
	}
	if !d.decor.Valid() {
		return invalid(kind, "unknown decor %q", d.decor)
	}
	for _, a := range d.additives {
		if !a.Valid() {
			return invalid(kind, "unknown additive %q", a)
		}
	}
	return nil
}

func validateEspresso(d *Drink) error {
	if len(d.additives) > 0 {
		return invalid(KindEspresso, "espresso forbids additives")
	}
	return nil
}

func validateMilky(kind Kind, milk MilkType, syrup SyrupType, dose decimal.Decimal) error {
	if !milk.Valid() {
		return invalid(kind, "unknown milk %q", milk)
	}
	if milk == MilkNone {
		return invalid(kind, "%s requires milk", kind)
	}
	if !syrup.Valid() {
		return invalid(kind, "unknown syrup %q", syrup)
	}
	if !dose.IsPositive() {
		return invalid(kind, "syrup dose must be positive")
	}
	// Exponent is checked first: comparing or printing a dose like 1e2000000000
	// expands it into a huge big.Int.
	if e := dose.Exponent(); e < -MaxSyrupDosePlaces || e > 1 || dose.GreaterThan(MaxSyrupDose) {
		return invalid(kind, "syrup dose must be at most %s with up to %d decimal places",
			MaxSyrupDose, MaxSyrupDosePlaces)
	}
	return nil
}
