package conform_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/commerce_dwh/conform"
)

func TestCleanString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`  sao paulo  `, "sao paulo"},
		{`"sao paulo"`, "sao paulo"},
		{`" 'sao paulo' "`, "sao paulo"},
		{`''`, ""},
		{"NULL", ""},
		{"null", ""},
		{"NaN", ""},
		{"n/a", ""},
		{`"NULL"`, ""},
		{"", ""},
		{"nulla", "nulla"}, // only exact markers are nulls
	}
	for _, c := range cases {
		if got := conform.CleanString(c.in); got != c.want {
			t.Errorf("CleanString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestProperCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sao paulo", "Sao Paulo"},
		{"SAO PAULO", "Sao Paulo"},
		{`"rio de janeiro"`, "Rio De Janeiro"},
		{"santa rita do passa-quatro", "Santa Rita Do Passa-Quatro"},
		{"", ""},
	}
	for _, c := range cases {
		if got := conform.ProperCase(c.in); got != c.want {
			t.Errorf("ProperCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUpperAndLowerCode(t *testing.T) {
	if got := conform.UpperCode(" sp "); got != "SP" {
		t.Errorf("UpperCode = %q, want SP", got)
	}
	if got := conform.LowerCode(`"Moveis_Decoracao"`); got != "moveis_decoracao" {
		t.Errorf("LowerCode = %q, want moveis_decoracao", got)
	}
}
