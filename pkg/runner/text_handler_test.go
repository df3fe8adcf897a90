package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/taproom/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Input(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader("  a guinness  \r\nDing\x07\nlast line"), out)
	ctx := context.Background()

	got, err := h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a guinness", got)

	got, err = h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ding", got)

	got, err = h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "last line", got)

	_, err = h.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", out.String())
}

func TestTextHandler_InputTooLarge(t *testing.T) {
	h := NewTextHandler(strings.NewReader("two pints of guinness\n"), io.Discard, WithTextHandlerMaxInputSize(4))

	_, err := h.Input(context.Background())
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestTextHandler_InputCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	h := NewTextHandler(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Input(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTextHandler_Close(t *testing.T) {
	h := NewTextHandler(strings.NewReader("first\nsecond\n"), io.Discard)

	line, err := h.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())

	_, err = h.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestTextHandler_Output(t *testing.T) {
	out := &bytes.Buffer{}
	var rendered []string
	h := NewTextHandler(strings.NewReader(""), out, WithTextHandlerRenderer(func(md string) (string, error) {
		rendered = append(rendered, md)
		return "RENDERED", nil
	}))
	ctx := context.Background()

	require.NoError(t, h.Output(ctx, domain.NewEmptyOrderOutcome()))
	require.NoError(t, h.Confirm(ctx, 7))
	require.NoError(t, h.SystemOutput(ctx, "hello"))

	require.Len(t, rendered, 2)
	assert.Contains(t, rendered[0], domain.EmptyOrderMessage)
	assert.Contains(t, rendered[1], "Table 7 order is on its way")
	assert.Equal(t, "RENDERED\nRENDERED\n[System] hello\n", out.String())
}

func TestTextHandler_RendererFailureFallsBack(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader(""), out, WithTextHandlerRenderer(func(string) (string, error) {
		return "", errors.New("no terminal")
	}))

	require.NoError(t, h.Confirm(context.Background(), 2))
	assert.Contains(t, out.String(), "## Order complete")
}

func TestJSONHandler_Input(t *testing.T) {
	h := NewJSONHandler(strings.NewReader("\"a guinness\"\nplain text\n"), io.Discard, 0)
	ctx := context.Background()

	got, err := h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a guinness", got)

	got, err = h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "plain text", got)

	_, err = h.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONHandler_Output(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewJSONHandler(strings.NewReader(""), out, 0)
	ctx := context.Background()

	require.NoError(t, h.Output(ctx, domain.NewEmptyOrderOutcome()))
	require.NoError(t, h.Confirm(ctx, 4))
	require.NoError(t, h.SystemOutput(ctx, "hi"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"type":"outcome","outcome":{"kind":"empty_order","message":"Nothing to order yet. Please add Guinness or crisps."},"tree":{"type":"Error","message":"Nothing to order yet. Please add Guinness or crisps."}}`, lines[0])
	assert.Contains(t, lines[1], `"message":"Table 4 order is on its way"`)
	assert.JSONEq(t, `{"type":"system","message":"hi"}`, lines[2])
}
