package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeFromFlags(t *testing.T) {
	tests := []struct {
		name           string
		numberAll      bool
		numberNonblank bool
		want           Mode
		wantErr        bool
	}{
		{name: "neither", want: ModePlain},
		{name: "number all", numberAll: true, want: ModeNumberAll},
		{name: "number nonblank", numberNonblank: true, want: ModeNumberNonblank},
		{name: "both", numberAll: true, numberNonblank: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModeFromFlags(tt.numberAll, tt.numberNonblank)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrConflictingModes))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModePlain, ModeNumberAll, ModeNumberNonblank} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestParseMode(t *testing.T) {
	got, err := ParseMode("  NUMBER ")
	require.NoError(t, err)
	assert.Equal(t, ModeNumberAll, got)

	got, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModePlain, got)

	_, err = ParseMode("show-tabs")
	assert.ErrorContains(t, err, "invalid mode")
}

func TestModeStringUnknown(t *testing.T) {
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestInvocationNormalize(t *testing.T) {
	inv := Invocation{Mode: ModeNumberAll}.Normalize()
	assert.Equal(t, []string{StdinIdentifier}, inv.Files)
	assert.Equal(t, ModeNumberAll, inv.Mode)

	files := []string{"a", "-", "b"}
	norm := Invocation{Files: files}.Normalize()
	assert.Equal(t, files, norm.Files)

	norm.Files[0] = "changed"
	assert.Equal(t, "a", files[0], "Normalize must not alias the caller's slice")
}
