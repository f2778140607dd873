package commands

import (
	"bytes"
	"strings"
	"testing"

	"bike-shop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HashPasswordCmd(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
	}{
		{name: "argument", args: []string{"s3cret"}},
		{name: "stdin", stdin: "s3cret\n"},
		{name: "stdin without newline", stdin: "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := hashPasswordCmd()
			cmd.SetArgs(tt.args)
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetOut(&out)

			require.NoError(t, cmd.Execute())

			ok, err := utils.VerifyPassword(strings.TrimSpace(out.String()), "s3cret")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func Test_HashPasswordCmd_EmptyPassword(t *testing.T) {
	cmd := hashPasswordCmd()
	cmd.SetArgs(nil)
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
