package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate{}
	if got.Base() != XXX || got.Quote() != XXX || !got.Rate().IsZero() {
		t.Errorf("ExchangeRate{} = %q, want %q", got, "XXX/XXX 0")
	}
}

func TestNewExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, quote Currency
			rate        string
		}{
			{USD, EUR, "0.928"},
			{EUR, USD, "1.0776"},
			{USD, USD, "1"},
			{USD, JPY, "147.25"},
		}
		for _, tt := range tests {
			rate := decimal.RequireFromString(tt.rate)
			got, err := NewExchRate(tt.base, tt.quote, rate)
			if err != nil {
				t.Errorf("NewExchRate(%v, %v, %q) failed: %v", tt.base, tt.quote, rate, err)
				continue
			}
			if got.Base() != tt.base || got.Quote() != tt.quote || !got.Rate().Equal(rate) {
				t.Errorf("NewExchRate(%v, %v, %q) = %q", tt.base, tt.quote, rate, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote Currency
			rate        string
		}{
			"zero rate":     {USD, EUR, "0"},
			"negative rate": {USD, EUR, "-0.9"},
			"identity":      {USD, USD, "1.5"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				rate := decimal.RequireFromString(tt.rate)
				_, err := NewExchRate(tt.base, tt.quote, rate)
				if err == nil {
					t.Errorf("NewExchRate(%v, %v, %q) did not fail", tt.base, tt.quote, rate)
				}
			})
		}
	})
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := ParseExchRate("usd", "eur", "0.928")
		if err != nil {
			t.Fatalf("ParseExchRate(\"usd\", \"eur\", \"0.928\") failed: %v", err)
		}
		want := MustParseExchRate("USD", "EUR", "0.928")
		if !got.SameCurr(want) || !got.Rate().Equal(want.Rate()) {
			t.Errorf("ParseExchRate(\"usd\", \"eur\", \"0.928\") = %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote, rate string
		}{
			"base":  {"UUU", "EUR", "0.9"},
			"quote": {"USD", "UUU", "0.9"},
			"rate":  {"USD", "EUR", "one"},
			"zero":  {"USD", "EUR", "0"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseExchRate(tt.base, tt.quote, tt.rate)
				if err == nil {
					t.Errorf("ParseExchRate(%q, %q, %q) did not fail", tt.base, tt.quote, tt.rate)
				}
			})
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseExchRate(\"UUU\", \"EUR\", \"0.9\") did not panic")
			}
		}()
		MustParseExchRate("UUU", "EUR", "0.9")
	})
}

func TestExchangeRate_CanConv(t *testing.T) {
	rate := MustParseExchRate("USD", "EUR", "0.928")
	tests := []struct {
		a    Amount
		want bool
	}{
		{MustParseAmount("USD", "100"), true},
		{MustParseAmount("EUR", "100"), false},
		{MustParseAmount("JPY", "100"), false},
	}
	for _, tt := range tests {
		got := rate.CanConv(tt.a)
		if got != tt.want {
			t.Errorf("%q.CanConv(%q) = %v, want %v", rate, tt.a, got, tt.want)
		}
	}

	zero := ExchangeRate{}
	if zero.CanConv(Amount{}) {
		t.Errorf("%q.CanConv(%q) = true, want false", zero, Amount{})
	}
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rate := MustParseExchRate("USD", "EUR", "0.928")
		a := MustParseAmount("USD", "10000")
		got := rate.Conv(a)
		want := MustParseAmount("EUR", "9280")
		if !got.EqualAmount(want) {
			t.Errorf("%q.Conv(%q) = %v, want %q", rate, a, got, want)
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		rate := MustParseExchRate("USD", "EUR", "0.928")
		a := MustParseAmount("EUR", "10000")
		got := rate.Conv(a)
		if !got.EqualError(Mismatch(EUR, USD)) {
			t.Errorf("%q.Conv(%q) = %v, want %v", rate, a, got, Mismatch(EUR, USD))
		}
	})
}

func TestExchangeRate_Inv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rate := MustParseExchRate("USD", "EUR", "0.8")
		got := rate.Inv()
		want := MustParseExchRate("EUR", "USD", "1.25")
		if got.Base() != want.Base() || got.Quote() != want.Quote() || !got.Rate().Equal(want.Rate()) {
			t.Errorf("%q.Inv() = %q, want %q", rate, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("ExchangeRate{}.Inv() did not panic")
			}
		}()
		zero := ExchangeRate{}
		zero.Inv()
	})
}

func TestExchangeRate_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rate := MustParseExchRate("USD", "EUR", "0.9")
		got := rate.Mul(decimal.NewFromInt(2))
		want := MustParseExchRate("USD", "EUR", "1.8")
		if !got.Rate().Equal(want.Rate()) || !got.SameCurr(want) {
			t.Errorf("%q.Mul(2) = %q, want %q", rate, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Mul(0) did not panic")
			}
		}()
		MustParseExchRate("USD", "EUR", "0.9").Mul(decimal.Zero)
	})
}

func TestExchangeRate_SameCurr(t *testing.T) {
	tests := []struct {
		r, q ExchangeRate
		want bool
	}{
		{MustParseExchRate("USD", "EUR", "0.9"), MustParseExchRate("USD", "EUR", "0.95"), true},
		{MustParseExchRate("USD", "EUR", "0.9"), MustParseExchRate("EUR", "USD", "0.9"), false},
		{MustParseExchRate("USD", "EUR", "0.9"), MustParseExchRate("USD", "JPY", "147"), false},
	}
	for _, tt := range tests {
		got := tt.r.SameCurr(tt.q)
		if got != tt.want {
			t.Errorf("%q.SameCurr(%q) = %v, want %v", tt.r, tt.q, got, tt.want)
		}
	}
}

func TestExchangeRate_String(t *testing.T) {
	tests := []struct {
		base, quote, rate string
		want              string
	}{
		{"USD", "EUR", "0.9", "USD/EUR 0.9"},
		{"EUR", "JPY", "158.5", "EUR/JPY 158.5"},
	}
	for _, tt := range tests {
		r := MustParseExchRate(tt.base, tt.quote, tt.rate)
		got := r.String()
		if got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
