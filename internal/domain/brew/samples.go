package brew

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/barista/internal/domain/drink"
)

// Samples returns the house demonstration drinks: a single espresso, an oat
// cappuccino with caramel and extra foam, and an almond latte with vanilla
// and latte art.
func Samples() []drink.Spec {
	return []drink.Spec{
		{Kind: drink.KindEspresso},
		{
			Kind:      drink.KindCappuccino,
			Milk:      drink.MilkOat,
			Syrup:     drink.SyrupCaramel,
			SyrupDose: decimal.NewFromInt(2),
			ExtraFoam: true,
		},
		{
			Kind:      drink.KindLatte,
			Milk:      drink.MilkAlmond,
			Syrup:     drink.SyrupVanilla,
			SyrupDose: decimal.NewFromInt(1),
			LatteArt:  true,
		},
	}
}
