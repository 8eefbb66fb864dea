package drink

import (
	"encoding/json"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSpec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantDesc string
		wantErr  error
	}{
		{
			name:     "espresso",
			input:    `{"kind":"espresso","double_shot":true}`,
			wantDesc: "Espresso, double, 60ml",
		},
		{
			name:     "cappuccino with numeric dose",
			input:    `{"kind":"cappuccino","milk":"oat","syrup":"caramel","syrup_dose":2,"extra_foam":true}`,
			wantDesc: "Cappuccino with oat milk with extra foam, syrup Caramel (2 doses), 300ml",
		},
		{
			name:     "latte with string dose and unknown field",
			input:    `{"kind":"latte","milk":"almond","syrup":"vanilla","syrup_dose":"1","latte_art":true,"note":{"x":[1,2]}}`,
			wantDesc: "Latte with almond milk, syrup Vanilla (1 doses), 300ml, with latte art",
		},
		{
			name:     "shared fields",
			input:    `{"kind":"latte","temperature":"iced","volume_ml":400,"packaging":"to_go","topping":"berry","decor":"cocoa"}`,
			wantDesc: "Latte with dairy milk, 400ml",
		},
		{
			name:    "espresso with additives fails validation",
			input:   `{"kind":"espresso","additives":["marshmallow"]}`,
			wantErr: ErrInvalidDrink,
		},
		{
			name:    "unknown kind fails validation",
			input:   `{"kind":"mocha"}`,
			wantErr: ErrInvalidDrink,
		},
		{
			name:    "not an object",
			input:   `["espresso"]`,
			wantErr: ErrMalformedSpec,
		},
		{
			name:    "wrong field type",
			input:   `{"kind":"latte","latte_art":"yes"}`,
			wantErr: ErrMalformedSpec,
		},
		{
			name:    "bad dose",
			input:   `{"kind":"latte","syrup_dose":"lots"}`,
			wantErr: ErrMalformedSpec,
		},
		{
			name:     "trailing whitespace",
			input:    "{\"kind\":\"espresso\"} \r\n",
			wantDesc: "Espresso, single, 30ml",
		},
		{
			name:    "second object after the first",
			input:   `{"kind":"espresso"}{"kind":"latte","milk":"none"}`,
			wantErr: ErrMalformedSpec,
		},
		{
			name:    "garbage after the object",
			input:   `{"kind":"espresso"} garbage`,
			wantErr: ErrMalformedSpec,
		},
		{
			name:    "explicit zero syrup dose",
			input:   `{"kind":"cappuccino","syrup":"mint","syrup_dose":0}`,
			wantErr: ErrInvalidDrink,
		},
		{
			name:    "explicit zero volume",
			input:   `{"kind":"espresso","volume_ml":0}`,
			wantErr: ErrInvalidDrink,
		},
		{
			name:    "huge syrup dose",
			input:   `{"kind":"latte","syrup":"mint","syrup_dose":"1e2000000000"}`,
			wantErr: ErrInvalidDrink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeSpec([]byte(tt.input))
			if err == nil {
				var d *Drink
				d, err = Build(s)
				if err == nil {
					require.Nil(t, tt.wantErr)
					assert.Equal(t, tt.wantDesc, d.Describe())
					return
				}
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_ExplicitZeros(t *testing.T) {
	t.Run("syrup dose", func(t *testing.T) {
		s, err := DecodeSpec([]byte(`{"kind":"cappuccino","syrup":"mint","syrup_dose":0}`))
		require.NoError(t, err)

		_, err = Build(s)
		requireValidationError(t, err, KindCappuccino, "syrup dose must be positive")
	})

	t.Run("volume", func(t *testing.T) {
		s, err := DecodeSpec([]byte(`{"kind":"latte","volume_ml":0}`))
		require.NoError(t, err)

		_, err = Build(s)
		requireValidationError(t, err, KindLatte, "volume must be positive, got 0ml")
	})

	t.Run("absent fields use defaults", func(t *testing.T) {
		d, err := Build(Spec{Kind: KindLatte, Syrup: SyrupMint})
		require.NoError(t, err)
		assert.Equal(t, "Latte with dairy milk, syrup Mint (1 doses), 300ml", d.Describe())
	})

	t.Run("encoded back as given", func(t *testing.T) {
		s, err := DecodeSpec([]byte(`{"kind":"latte","volume_ml":0,"syrup_dose":0}`))
		require.NoError(t, err)

		data, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"latte","volume_ml":0,"syrup_dose":0,"latte_art":false}`, string(data))
	})
}

func TestDecodeSpec_SharedFields(t *testing.T) {
	s, err := DecodeSpec([]byte(`{"kind":"cappuccino","temperature":"warm","packaging":"own_cup","additives":["ice_cream","whipped_cream"]}`))
	require.NoError(t, err)

	d, err := Build(s)
	require.NoError(t, err)
	assert.Equal(t, TemperatureWarm, d.Temperature())
	assert.Equal(t, PackagingOwnCup, d.Packaging())
	assert.Equal(t, []Additive{AdditiveIceCream, AdditiveWhippedCream}, d.Additives())
}

func TestSpecOf_Rebuilds(t *testing.T) {
	original, err := NewLatte(LatteOptions{
		Common:    Common{Temperature: TemperatureCold, Additives: []Additive{AdditiveIceCream}},
		Milk:      MilkCoconut,
		Syrup:     SyrupHazelnut,
		SyrupDose: dose("0.5"),
		LatteArt:  true,
	})
	require.NoError(t, err)

	data, err := json.Marshal(SpecOf(original))
	require.NoError(t, err)

	var s Spec
	require.NoError(t, json.Unmarshal(data, &s))

	rebuilt, err := Build(s)
	require.NoError(t, err)
	assert.Equal(t, original.Describe(), rebuilt.Describe())
	assert.Equal(t, original.Additives(), rebuilt.Additives())
	assert.Equal(t, original.Temperature(), rebuilt.Temperature())
	assert.Equal(t, DecorLatteArt, rebuilt.Decor())
}

func TestSpec_EncodeOmitsForeignFields(t *testing.T) {
	data, err := json.Marshal(Spec{Kind: KindEspresso, Milk: MilkOat, LatteArt: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"espresso","double_shot":false}`, string(data))
}

func TestSpec_EncodeDoseAsNumber(t *testing.T) {
	tests := []struct {
		name string
		dose string
		want string
	}{
		{name: "integer", dose: "2", want: `{"kind":"cappuccino","syrup":"caramel","syrup_dose":2,"extra_foam":false}`},
		{name: "fraction", dose: "1.5", want: `{"kind":"cappuccino","syrup":"caramel","syrup_dose":1.5,"extra_foam":false}`},
		{name: "huge exponent kept compact", dose: "1e2000000000", want: `{"kind":"cappuccino","syrup":"caramel","syrup_dose":1e2000000000,"extra_foam":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := jx.Encoder{}
			Spec{Kind: KindCappuccino, Syrup: SyrupCaramel, SyrupDose: dose(tt.dose)}.Encode(&e)
			assert.Equal(t, tt.want, e.String())
		})
	}
}
