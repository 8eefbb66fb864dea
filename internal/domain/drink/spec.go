package drink

import (
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// ErrMalformedSpec is returned when a spec cannot be decoded.
var ErrMalformedSpec = errors.New("malformed drink spec")

// Spec is the wire form of a construction request. Fields that do not apply
// to Kind are ignored by Build.
//
// A zero VolumeMl or SyrupDose means "use the default", unless the field was
// present in the decoded JSON: an explicit 0 is then rejected by Build.
type Spec struct {
	Kind Kind
	Common

	DoubleShot bool

	Milk      MilkType
	Syrup     SyrupType
	SyrupDose decimal.Decimal
	ExtraFoam bool
	LatteArt  bool

	given given
}

// Build constructs the drink described by s.
func Build(s Spec) (*Drink, error) {
	switch s.Kind {
	case KindEspresso:
		return newEspresso(EspressoOptions{
			Common:     s.Common,
			DoubleShot: s.DoubleShot,
		}, s.given)
	case KindCappuccino:
		return newCappuccino(CappuccinoOptions{
			Common:    s.Common,
			Milk:      s.Milk,
			Syrup:     s.Syrup,
			SyrupDose: s.SyrupDose,
			ExtraFoam: s.ExtraFoam,
		}, s.given)
	case KindLatte:
		return newLatte(LatteOptions{
			Common:    s.Common,
			Milk:      s.Milk,
			Syrup:     s.Syrup,
			SyrupDose: s.SyrupDose,
			LatteArt:  s.LatteArt,
		}, s.given)
	default:
		return nil, invalid(s.Kind, "unknown drink kind %q", s.Kind)
	}
}

// SpecOf returns the spec that rebuilds d, with every default spelled out.
func SpecOf(d *Drink) Spec {
	s := Spec{
		Kind: d.Kind(),
		Common: Common{
			Temperature: d.temperature,
			VolumeMl:    d.volumeMl,
			Packaging:   d.packaging,
			Additives:   d.Additives(),
			Topping:     d.topping,
			Decor:       d.decor,
		},
	}
	switch v := d.variant.(type) {
	case Espresso:
		s.DoubleShot = v.DoubleShot
	case Cappuccino:
		s.Milk, s.Syrup, s.SyrupDose, s.ExtraFoam = v.Milk, v.Syrup, v.SyrupDose, v.ExtraFoam
	case Latte:
		s.Milk, s.Syrup, s.SyrupDose, s.LatteArt = v.Milk, v.Syrup, v.SyrupDose, v.LatteArt
	}
	return s
}

// DecodeSpec decodes a single JSON object into a Spec. Anything after the
// object other than whitespace is an error.
func DecodeSpec(data []byte) (Spec, error) {
	var s Spec
	d := jx.DecodeBytes(data)
	if err := s.Decode(d); err != nil {
		return Spec{}, fmt.Errorf("%w: %w", ErrMalformedSpec, err)
	}
	if err := d.Skip(); err != io.EOF {
		return Spec{}, fmt.Errorf("%w: unexpected trailing data", ErrMalformedSpec)
	}
	return s, nil
}

// MarshalJSON implements json.Marshaler.
func (s Spec) MarshalJSON() ([]byte, error) {
	e := jx.Encoder{}
	s.Encode(&e)
	return e.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Spec) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeSpec(data)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// Encode writes s as a JSON object. Empty fields and fields that do not
// apply to the kind are omitted.
func (s Spec) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("kind")
	e.Str(string(s.Kind))

	encodeStr(e, "temperature", string(s.Temperature))
	if s.VolumeMl != 0 || s.given.volume {
		e.FieldStart("volume_ml")
		e.Int(s.VolumeMl)
	}
	encodeStr(e, "packaging", string(s.Packaging))
	if len(s.Additives) > 0 {
		e.FieldStart("additives")
		e.ArrStart()
		for _, a := range s.Additives {
			e.Str(string(a))
		}
		e.ArrEnd()
	}
	encodeStr(e, "topping", string(s.Topping))
	encodeStr(e, "decor", string(s.Decor))

	switch s.Kind {
	case KindEspresso:
		e.FieldStart("double_shot")
		e.Bool(s.DoubleShot)
	case KindCappuccino, KindLatte:
		encodeStr(e, "milk", string(s.Milk))
		encodeStr(e, "syrup", string(s.Syrup))
		if !s.SyrupDose.IsZero() || s.given.dose {
			e.FieldStart("syrup_dose")
			e.Num(doseNum(s.SyrupDose))
		}
		if s.Kind == KindCappuccino {
			e.FieldStart("extra_foam")
			e.Bool(s.ExtraFoam)
		} else {
			e.FieldStart("latte_art")
			e.Bool(s.LatteArt)
		}
	}
	e.ObjEnd()
}

// Decode reads a JSON object into s. Unknown fields are skipped; vocabulary
// values are not checked here, Build rejects them.
func (s *Spec) Decode(d *jx.Decoder) error {
	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch k := string(key); k {
		case "kind":
			v, err := decodeStr(d, k)
			s.Kind = Kind(v)
			return err
		case "temperature":
			v, err := decodeStr(d, k)
			s.Temperature = Temperature(v)
			return err
		case "volume_ml":
			v, err := d.Int()
			if err != nil {
				return errors.Wrap(err, k)
			}
			s.VolumeMl = v
			s.given.volume = true
		case "packaging":
			v, err := decodeStr(d, k)
			s.Packaging = Packaging(v)
			return err
		case "additives":
			if err := d.Arr(func(d *jx.Decoder) error {
				v, err := d.Str()
				if err != nil {
					return err
				}
				s.Additives = append(s.Additives, Additive(v))
				return nil
			}); err != nil {
				return errors.Wrap(err, k)
			}
		case "topping":
			v, err := decodeStr(d, k)
			s.Topping = Topping(v)
			return err
		case "decor":
			v, err := decodeStr(d, k)
			s.Decor = Decor(v)
			return err
		case "double_shot":
			return decodeBool(d, k, &s.DoubleShot)
		case "milk":
			v, err := decodeStr(d, k)
			s.Milk = MilkType(v)
			return err
		case "syrup":
			v, err := decodeStr(d, k)
			s.Syrup = SyrupType(v)
			return err
		case "syrup_dose":
			v, err := decodeDecimal(d)
			if err != nil {
				return errors.Wrap(err, k)
			}
			s.SyrupDose = v
			s.given.dose = true
		case "extra_foam":
			return decodeBool(d, k, &s.ExtraFoam)
		case "latte_art":
			return decodeBool(d, k, &s.LatteArt)
		default:
			return d.Skip()
		}
		return nil
	})
}

func encodeStr(e *jx.Encoder, field, v string) {
	if v == "" {
		return
	}
	e.FieldStart(field)
	e.Str(v)
}

func decodeStr(d *jx.Decoder, field string) (string, error) {
	v, err := d.Str()
	if err != nil {
		return "", errors.Wrap(err, field)
	}
	return v, nil
}

func decodeBool(d *jx.Decoder, field string, dst *bool) error {
	v, err := d.Bool()
	if err != nil {
		return errors.Wrap(err, field)
	}
	*dst = v
	return nil
}

// doseNum formats v as a JSON number. Out of range exponents are kept in
// exponent form so that String does not expand them.
func doseNum(v decimal.Decimal) jx.Num {
	if e := v.Exponent(); e < -MaxSyrupDosePlaces || e > 1 {
		return jx.Num(fmt.Sprintf("%de%d", v.Coefficient(), e))
	}
	return jx.Num(v.String())
}

// decodeDecimal accepts both 1.5 and "1.5".
func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	switch tt := d.Next(); tt {
	case jx.String:
		v, err := d.Str()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(v)
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(string(n))
	default:
		return decimal.Zero, errors.Errorf("unexpected %v, want number", tt)
	}
}
