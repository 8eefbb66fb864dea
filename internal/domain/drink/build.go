package drink

// NewEspresso builds an espresso. It fails when any additive is supplied.
func NewEspresso(opts EspressoOptions) (*Drink, error) {
	return newEspresso(opts, given{})
}

// NewCappuccino builds a cappuccino. It fails when the milk is MilkNone.
func NewCappuccino(opts CappuccinoOptions) (*Drink, error) {
	return newCappuccino(opts, given{})
}

// NewLatte builds a latte. It fails when the milk is MilkNone. With LatteArt
// set the decor is always DecorLatteArt, whatever Common.Decor says.
func NewLatte(opts LatteOptions) (*Drink, error) {
	return newLatte(opts, given{})
}

func newEspresso(opts EspressoOptions, g given) (*Drink, error) {
	volume := SingleShotVolumeMl
	if opts.DoubleShot {
		volume = DoubleShotVolumeMl
	}
	d := opts.Common.apply(volume, g)
	d.variant = Espresso{DoubleShot: opts.DoubleShot}
	return finish(d)
}

func newCappuccino(opts CappuccinoOptions, g given) (*Drink, error) {
	d := opts.Common.apply(DefaultVolumeMl, g)
	d.variant = Cappuccino{
		Milk:      milkOrDefault(opts.Milk),
		Syrup:     syrupOrDefault(opts.Syrup),
		SyrupDose: doseOrDefault(opts.SyrupDose, g),
		ExtraFoam: opts.ExtraFoam,
	}
	return finish(d)
}

func newLatte(opts LatteOptions, g given) (*Drink, error) {
	d := opts.Common.apply(DefaultVolumeMl, g)
	d.variant = Latte{
		Milk:      milkOrDefault(opts.Milk),
		Syrup:     syrupOrDefault(opts.Syrup),
		SyrupDose: doseOrDefault(opts.SyrupDose, g),
		LatteArt:  opts.LatteArt,
	}
	if opts.LatteArt {
		d.decor = DecorLatteArt
	}
	return finish(d)
}

func finish(d *Drink) (*Drink, error) {
	if err := validate(d); err != nil {
		return nil, err
	}
	return d, nil
}
