// Package drink models the café drink catalog: a closed set of variants
// sharing common serving attributes, validated once at construction and
// rendered into human-readable descriptions.
package drink

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Kind tags the variant of a drink.
type Kind string

const (
	KindEspresso   Kind = "espresso"
	KindCappuccino Kind = "cappuccino"
	KindLatte      Kind = "latte"
)

// Variant is the variant-specific payload of a drink. The set of
// implementations is closed: Espresso, Cappuccino and Latte.
type Variant interface {
	Kind() Kind
	sealed()
}

var (
	_ Variant = Espresso{}
	_ Variant = Cappuccino{}
	_ Variant = Latte{}
)

// Espresso is a plain shot of coffee.
type Espresso struct {
	DoubleShot bool
}

// Cappuccino is espresso with steamed milk and foam.
type Cappuccino struct {
	Milk      MilkType
	Syrup     SyrupType
	SyrupDose decimal.Decimal
	ExtraFoam bool
}

// Latte is espresso with a larger share of steamed milk.
type Latte struct {
	Milk      MilkType
	Syrup     SyrupType
	SyrupDose decimal.Decimal
	LatteArt  bool
}

func (Espresso) Kind() Kind   { return KindEspresso }
func (Cappuccino) Kind() Kind { return KindCappuccino }
func (Latte) Kind() Kind      { return KindLatte }

func (Espresso) sealed()   {}
func (Cappuccino) sealed() {}
func (Latte) sealed()      {}

// Drink is a validated drink configuration. It can only be obtained from
// NewEspresso, NewCappuccino, NewLatte or Build.
//
// All fields are fixed after construction except the additive list, which
// AddAdditive extends in place.
type Drink struct {
	temperature Temperature
	volumeMl    int
	packaging   Packaging
	additives   []Additive
	topping     Topping
	decor       Decor
	variant     Variant
}

// Kind returns the variant tag.
func (d *Drink) Kind() Kind {
	if d.variant == nil {
		return ""
	}
	return d.variant.Kind()
}

// Variant returns a copy of the variant payload.
func (d *Drink) Variant() Variant { return d.variant }

func (d *Drink) Temperature() Temperature { return d.temperature }
func (d *Drink) VolumeMl() int            { return d.volumeMl }
func (d *Drink) Packaging() Packaging     { return d.packaging }
func (d *Drink) Topping() Topping         { return d.topping }
func (d *Drink) Decor() Decor             { return d.decor }

// Additives returns the additives in the order they were added.
func (d *Drink) Additives() []Additive {
	return slices.Clone(d.additives)
}

// AddAdditive appends a to the additive list. The variant rules are not
// re-checked, so an espresso accepts additives here even though it rejects
// them at construction; use WithAdditive for a checked append.
func (d *Drink) AddAdditive(a Additive) {
	d.additives = append(d.additives, a)
}

// WithAdditive returns a copy of d with a appended, validated against the
// variant rules. d itself is never modified.
func (d *Drink) WithAdditive(a Additive) (*Drink, error) {
	next := d.clone()
	next.additives = append(next.additives, a)
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return next, nil
}

// Validate re-checks the variant rules against the current state.
func (d *Drink) Validate() error {
	return validate(d)
}

// Describe returns the English description of the drink.
func (d *Drink) Describe() string {
	return Render(d, LocaleEnglish)
}

func (d *Drink) clone() *Drink {
	c := *d
	c.additives = slices.Clone(d.additives)
	return &c
}
