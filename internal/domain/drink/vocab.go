package drink

import (
	"github.com/go-faster/errors"
)

// MilkType enumerates the milks a drink can be made with.
type MilkType string

const (
	MilkNone    MilkType = "none"
	MilkDairy   MilkType = "dairy"
	MilkOat     MilkType = "oat"
	MilkAlmond  MilkType = "almond"
	MilkCoconut MilkType = "coconut"
	MilkBanana  MilkType = "banana"
	MilkSoy     MilkType = "soy"
)

// SyrupType enumerates the flavour syrups.
type SyrupType string

const (
	SyrupNone      SyrupType = "none"
	SyrupCaramel   SyrupType = "caramel"
	SyrupVanilla   SyrupType = "vanilla"
	SyrupHazelnut  SyrupType = "hazelnut"
	SyrupChocolate SyrupType = "chocolate"
	SyrupCoconut   SyrupType = "coconut"
	SyrupLavender  SyrupType = "lavender"
	SyrupMint      SyrupType = "mint"
)

// Temperature enumerates serving temperatures.
type Temperature string

const (
	TemperatureHot  Temperature = "hot"
	TemperatureWarm Temperature = "warm"
	TemperatureCold Temperature = "cold"
	TemperatureIced Temperature = "iced"
)

// Additive enumerates extras that can be added on top of a drink.
type Additive string

const (
	AdditiveWhippedCream Additive = "whipped_cream"
	AdditiveIceCream     Additive = "ice_cream"
	AdditiveMarshmallow  Additive = "marshmallow"
)

// Topping enumerates sauce toppings.
type Topping string

const (
	ToppingNone      Topping = "none"
	ToppingChocolate Topping = "chocolate"
	ToppingCaramel   Topping = "caramel"
	ToppingBerry     Topping = "berry"
)

// Decor enumerates surface decorations.
type Decor string

const (
	DecorNone              Decor = "none"
	DecorCinnamon          Decor = "cinnamon"
	DecorCocoa             Decor = "cocoa"
	DecorChocolateShavings Decor = "chocolate_shavings"
	DecorLatteArt          Decor = "latte_art"
)

// Packaging enumerates how the drink is handed over.
type Packaging string

const (
	PackagingInHouse Packaging = "in_house"
	PackagingToGo    Packaging = "to_go"
	PackagingOwnCup  Packaging = "own_cup"
)

// Valid reports whether m is a member of the closed milk set.
func (m MilkType) Valid() bool {
	switch m {
	case MilkNone, MilkDairy, MilkOat, MilkAlmond, MilkCoconut, MilkBanana, MilkSoy:
		return true
	default:
		return false
	}
}

// Valid reports whether s is a member of the closed syrup set.
func (s SyrupType) Valid() bool {
	switch s {
	case SyrupNone, SyrupCaramel, SyrupVanilla, SyrupHazelnut,
		SyrupChocolate, SyrupCoconut, SyrupLavender, SyrupMint:
		return true
	default:
		return false
	}
}

// Label returns the display name of the syrup as printed on descriptions.
func (s SyrupType) Label() string {
	switch s {
	case SyrupCaramel:
		return "Caramel"
	case SyrupVanilla:
		return "Vanilla"
	case SyrupHazelnut:
		return "Hazelnut"
	case SyrupChocolate:
		return "Chocolate"
	case SyrupCoconut:
		return "Coconut"
	case SyrupLavender:
		return "Lavender"
	case SyrupMint:
		return "Mint"
	default:
		return "None"
	}
}

// Valid reports whether t is a member of the closed temperature set.
func (t Temperature) Valid() bool {
	switch t {
	case TemperatureHot, TemperatureWarm, TemperatureCold, TemperatureIced:
		return true
	default:
		return false
	}
}

// Valid reports whether a is a member of the closed additive set.
func (a Additive) Valid() bool {
	switch a {
	case AdditiveWhippedCream, AdditiveIceCream, AdditiveMarshmallow:
		return true
	default:
		return false
	}
}

// Valid reports whether t is a member of the closed topping set.
func (t Topping) Valid() bool {
	switch t {
	case ToppingNone, ToppingChocolate, ToppingCaramel, ToppingBerry:
		return true
	default:
		return false
	}
}

// Valid reports whether d is a member of the closed decor set.
func (d Decor) Valid() bool {
	switch d {
	case DecorNone, DecorCinnamon, DecorCocoa, DecorChocolateShavings, DecorLatteArt:
		return true
	default:
		return false
	}
}

// Valid reports whether p is a member of the closed packaging set.
func (p Packaging) Valid() bool {
	switch p {
	case PackagingInHouse, PackagingToGo, PackagingOwnCup:
		return true
	default:
		return false
	}
}

// ErrUnknownValue is returned by the Parse functions for identifiers outside
// their vocabulary.
var ErrUnknownValue = errors.New("unknown vocabulary value")

type vocab interface {
	~string
	Valid() bool
}

func parse[T vocab](field, s string) (T, error) {
	v := T(s)
	if !v.Valid() {
		var zero T
		return zero, errors.Wrapf(ErrUnknownValue, "%s %q", field, s)
	}
	return v, nil
}

// ParseMilkType parses a milk identifier such as "oat".
func ParseMilkType(s string) (MilkType, error) { return parse[MilkType]("milk", s) }

// ParseSyrupType parses a syrup identifier such as "vanilla".
func ParseSyrupType(s string) (SyrupType, error) { return parse[SyrupType]("syrup", s) }

// ParseTemperature parses a temperature identifier such as "iced".
func ParseTemperature(s string) (Temperature, error) { return parse[Temperature]("temperature", s) }

// ParseAdditive parses an additive identifier such as "marshmallow".
func ParseAdditive(s string) (Additive, error) { return parse[Additive]("additive", s) }

// ParseTopping parses a topping identifier such as "berry".
func ParseTopping(s string) (Topping, error) { return parse[Topping]("topping", s) }

// ParseDecor parses a decor identifier such as "cinnamon".
func ParseDecor(s string) (Decor, error) { return parse[Decor]("decor", s) }

// ParsePackaging parses a packaging identifier such as "to_go".
func ParsePackaging(s string) (Packaging, error) { return parse[Packaging]("packaging", s) }
