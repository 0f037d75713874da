package scenario_test

import (
	"testing"
	"vendors/internal/scenario"
	"vendors/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{name: "already normalized", in: "mar-del-plata", out: "mar-del-plata", ok: true},
		{name: "lowercase and join words", in: "Mar del Plata", out: "mar-del-plata", ok: true},
		{name: "trim surrounding whitespace", in: "  Rosario\t", out: "rosario", ok: true},
		{name: "collapse separators", in: "la__plata -  city", out: "la-plata-city", ok: true},
		{name: "keep accents", in: "Tafí del Valle", out: "tafí-del-valle", ok: true},
		{name: "keep digits", in: "Center 42", out: "center-42", ok: true},
		{name: "empty", in: "", ok: false},
		{name: "only separators", in: " _ - ", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scenario.NormalizeName(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, serrors.ErrBadRequest)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}
