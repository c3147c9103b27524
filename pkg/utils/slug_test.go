package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Panadería La Ñapa", "panaderia-la-napa"},
		{"  Café -- Central  ", "cafe-central"},
		{"Restaurante El Sabor 24/7", "restaurante-el-sabor-24-7"},
		{"---", ""},
	}

	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
