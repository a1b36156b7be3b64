package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/outfit/internal/ui/output"
)

func TestProfile(t *testing.T) {
	t.Run("no tty is plain", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.Equal(t, termenv.Ascii, output.Profile(false))
	})

	t.Run("NO_COLOR wins over a tty", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, termenv.Ascii, output.Profile(true))
	})
}

func TestNew_PlainOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	out := output.New(buf, true)
	styled := out.String("ready").Foreground(output.Colour("#22A06B")).Bold().String()

	assert.Equal(t, "ready", styled)
}
