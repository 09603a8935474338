package share

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures share requests.
type recorder struct {
	requests []Request
	err      error
}

func (r *recorder) Name() string { return "recorder" }

func (r *recorder) RequestTextShare(_ context.Context, req Request) error {
	r.requests = append(r.requests, req)
	return r.err
}

func TestRequest(t *testing.T) {
	req := NewTextRequest("hello")
	assert.Equal(t, MimeTypeText, req.MimeType)
	assert.NoError(t, req.Validate())

	err := Request{MimeType: "image/png"}.Validate()
	assert.ErrorIs(t, err, ErrUnsupportedMimeType)
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		method string
		want   string
	}{
		{method: "clipboard", want: MethodClipboard},
		{method: "OSC52", want: MethodOSC52},
		{method: "stdout", want: MethodStdout},
		{method: "none", want: MethodNone},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			c, err := Resolve(tt.method, &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
		})
	}

	t.Run("auto never picks osc52 for a non-terminal writer", func(t *testing.T) {
		c, err := Resolve("", &buf)
		require.NoError(t, err)
		assert.NotEqual(t, MethodOSC52, c.Name())
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := Resolve("fax", &buf)
		assert.ErrorIs(t, err, ErrUnknownMethod)
	})
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.RequestTextShare(context.Background(), NewTextRequest("Category: Organic\nTotal Price: 5000.0")))
	assert.Equal(t, "Category: Organic\nTotal Price: 5000.0\n", buf.String())

	assert.ErrorIs(t, NewWriter(nil).RequestTextShare(context.Background(), NewTextRequest("x")), ErrUnavailable)
}

func TestOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("STY", "")

	var buf bytes.Buffer
	o := NewOSC52(&buf)

	require.NoError(t, o.RequestTextShare(context.Background(), NewTextRequest("total")))

	encoded := base64.StdEncoding.EncodeToString([]byte("total"))
	assert.Contains(t, buf.String(), "\x1b]52;c;"+encoded)
}

func TestClipboard(t *testing.T) {
	t.Run("writes when supported", func(t *testing.T) {
		var got string
		c := &Clipboard{supported: true, write: func(s string) error { got = s; return nil }}

		require.NoError(t, c.RequestTextShare(context.Background(), NewTextRequest("copied")))
		assert.Equal(t, "copied", got)
		assert.True(t, c.Available())
	})

	t.Run("unsupported platform", func(t *testing.T) {
		c := &Clipboard{supported: false, write: func(string) error { t.Fatal("must not write"); return nil }}

		err := c.RequestTextShare(context.Background(), NewTextRequest("copied"))
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("wraps write errors", func(t *testing.T) {
		boom := errors.New("xclip exited 1")
		c := &Clipboard{supported: true, write: func(string) error { return boom }}

		err := c.RequestTextShare(context.Background(), NewTextRequest("copied"))
		assert.ErrorIs(t, err, boom)
	})
}

func TestNop(t *testing.T) {
	assert.ErrorIs(t, Nop{}.RequestTextShare(context.Background(), NewTextRequest("x")), ErrUnavailable)
}

func TestDispatch(t *testing.T) {
	t.Run("forwards the request and yields no message", func(t *testing.T) {
		rec := &recorder{}
		cmd := Dispatch(context.Background(), rec, NewTextRequest("Category: Inorganic\nTotal Price: 15000.0"))

		require.NotNil(t, cmd)
		assert.Nil(t, cmd())
		require.Len(t, rec.requests, 1)
		assert.Equal(t, "Category: Inorganic\nTotal Price: 15000.0", rec.requests[0].Text)
		assert.Equal(t, MimeTypeText, rec.requests[0].MimeType)
	})

	t.Run("swallows failures and logs them", func(t *testing.T) {
		var logs bytes.Buffer
		ctx := zerolog.New(&logs).WithContext(context.Background())
		rec := &recorder{err: errors.New("denied")}

		assert.NotPanics(t, func() { Send(ctx, rec, NewTextRequest("x")) })
		assert.Contains(t, logs.String(), "share request failed")
	})

	t.Run("unavailable is dropped quietly", func(t *testing.T) {
		var logs bytes.Buffer
		ctx := zerolog.New(&logs).Level(zerolog.InfoLevel).WithContext(context.Background())

		Send(ctx, Nop{}, NewTextRequest("x"))
		assert.Empty(t, logs.String())
	})

	t.Run("nil capability behaves like nop", func(t *testing.T) {
		assert.NotPanics(t, func() { Send(context.Background(), nil, NewTextRequest("x")) })
	})
}
