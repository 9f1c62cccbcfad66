package money

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestCurrency_ZeroValue(t *testing.T) {
	got := Currency(0)
	if got != XXX {
		t.Errorf("Currency(0) = %v, want %v", got, XXX)
	}
}

func TestCurrency_Interfaces(t *testing.T) {
	var i any = XXX
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	_, ok = i.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", i)
	}
	_, ok = i.(json.Marshaler)
	if !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
}

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"xxx", XXX},
			{"XXX", XXX},
			{"jpy", JPY},
			{"JPY", JPY},
			{"usd", USD},
			{"USD", USD},
			{"omr", OMR},
			{"OMR", OMR},
			{"Eur", EUR},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "840", "test", "xbt", "$", "AU$", "BTC",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{XXX, 0},
		{JPY, 0},
		{ISK, 0},
		{EUR, 2},
		{USD, 2},
		{OMR, 3},
		{BHD, 3},
		{CLF, 4},
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		curr   Currency
		format string
		want   string
	}{
		{USD, "%s", "USD"},
		{USD, "%v", "USD"},
		{USD, "%c", "USD"},
		{USD, "%q", "\"USD\""},
		{USD, "%6s", "   USD"},
		{USD, "%-6s", "USD   "},
		{USD, "%6q", " \"USD\""},
		{USD, "%d", "%!d(money.Currency=USD)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_JSON(t *testing.T) {
	t.Run("round-trip", func(t *testing.T) {
		tests := []Currency{XXX, JPY, USD, EUR, OMR}
		for _, tt := range tests {
			data, err := json.Marshal(tt)
			if err != nil {
				t.Errorf("json.Marshal(%v) failed: %v", tt, err)
				continue
			}
			var got Currency
			err = json.Unmarshal(data, &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%q) failed: %v", data, err)
				continue
			}
			if got != tt {
				t.Errorf("json round trip of %v returned %v", tt, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var c Currency
		err := json.Unmarshal([]byte(`"UUU"`), &c)
		if err == nil {
			t.Errorf("json.Unmarshal(`\"UUU\"`) did not fail")
		}
	})
}

func TestCurrency_Text(t *testing.T) {
	tests := []Currency{XXX, JPY, USD, EUR}
	for _, tt := range tests {
		data, err := tt.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", tt, err)
			continue
		}
		var got Currency
		err = got.UnmarshalText(data)
		if err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", data, err)
			continue
		}
		if got != tt {
			t.Errorf("text round trip of %v returned %v", tt, got)
		}
	}
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  Currency
		}{
			{"USD", USD},
			{[]byte("eur"), EUR},
		}
		for _, tt := range tests {
			var got Currency
			err := got.Scan(tt.value)
			if err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, 840, 84.0, true}
		for _, tt := range tests {
			var got Currency
			err := got.Scan(tt)
			if err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestCurrency_Value(t *testing.T) {
	got, err := USD.Value()
	if err != nil {
		t.Fatalf("USD.Value() failed: %v", err)
	}
	if got != "USD" {
		t.Errorf("USD.Value() = %v, want %v", got, "USD")
	}
}

func TestNullCurrency(t *testing.T) {
	t.Run("scan null", func(t *testing.T) {
		var n NullCurrency
		err := n.Scan(nil)
		if err != nil {
			t.Fatalf("Scan(nil) failed: %v", err)
		}
		if n.Valid {
			t.Errorf("Scan(nil) = %v, want invalid", n)
		}
	})

	t.Run("scan value", func(t *testing.T) {
		var n NullCurrency
		err := n.Scan("EUR")
		if err != nil {
			t.Fatalf("Scan(\"EUR\") failed: %v", err)
		}
		if !n.Valid || n.Currency != EUR {
			t.Errorf("Scan(\"EUR\") = %v, want valid EUR", n)
		}
	})

	t.Run("json", func(t *testing.T) {
		tests := []struct {
			n    NullCurrency
			want string
		}{
			{NullCurrency{}, "null"},
			{NullCurrency{Currency: EUR, Valid: true}, "\"EUR\""},
		}
		for _, tt := range tests {
			data, err := json.Marshal(tt.n)
			if err != nil {
				t.Errorf("json.Marshal(%v) failed: %v", tt.n, err)
				continue
			}
			if string(data) != tt.want {
				t.Errorf("json.Marshal(%v) = %s, want %s", tt.n, data, tt.want)
			}
			var got NullCurrency
			err = json.Unmarshal(data, &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", data, err)
				continue
			}
			if got != tt.n {
				t.Errorf("json round trip of %v returned %v", tt.n, got)
			}
		}
	})
}
