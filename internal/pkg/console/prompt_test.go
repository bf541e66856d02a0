package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/hostel/internal/pkg/apperrors"
)

func TestPrompt_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("Alice\r\n 42 \nabc\nlast"), &out)

	answer, err := p.Ask("Enter student name: ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", answer)
	assert.Equal(t, "Enter student name: \n", out.String())

	n, err := p.AskInt("Number?")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = p.AskInt("Number?")
	assert.ErrorIs(t, err, apperrors.ErrInvalidNumber)

	answer, err = p.AskInline("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = p.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}
