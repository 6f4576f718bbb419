package fmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		mode uint32
		expr string
		want string
	}{
		{0o100644, "u-r", "--w-r--r--"},
		{0o100644, "u+x", "-rwxr--r--"},
		{0o100644, "go+w", "-rw-rw-rw-"},
		{0o100644, "a=rx", "-r-xr-xr-x"},
		{0o100644, "=r", "-r--r--r--"},
		{0o100644, "+x", "-rwxr-xr-x"},
		{0o100755, "o=", "-rwxr-x---"},
		{0o040755, "g-rx,o-rx,u-w", "dr-x------"},
		{0o100600, "ug+", "-rw-------"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := Parse(tt.mode)
			require.NoError(t, err)
			require.NoError(t, p.Apply(tt.expr))
			assert.Equal(t, tt.want, p.Symbolic())
		})
	}
}

func TestApplyInvalid(t *testing.T) {
	for _, expr := range []string{"", "u", "z+r", "u+q", "u+r,g"} {
		t.Run(expr, func(t *testing.T) {
			p, err := Parse(0o100644)
			require.NoError(t, err)

			err = p.Apply(expr)
			require.ErrorIs(t, err, ErrInvalidSymbolic)
			assert.Equal(t, "-rw-r--r--", p.Symbolic(), "permission must be left untouched")
		})
	}
}
