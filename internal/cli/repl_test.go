package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) List(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}
func (f *fakeExec) Get(ctx context.Context, key string) error {
	f.calls = append(f.calls, "get "+key)
	return nil
}
func (f *fakeExec) Find(ctx context.Context, field, text string) error {
	f.calls = append(f.calls, "find "+field+"|"+text)
	return nil
}
func (f *fakeExec) Put(ctx context.Context, doc string) error {
	f.calls = append(f.calls, "put "+doc)
	return nil
}
func (f *fakeExec) Remove(ctx context.Context, key string) error {
	f.calls = append(f.calls, "rm "+key)
	return nil
}

func TestRunREPL_Dispatch(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"l",
		"get 42",
		"find title two words",
		`put {"id": 1, "title": "a b"}`,
		"rm 42",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"list",
		"get 42",
		"find title|two words",
		`put {"id": 1, "title": "a b"}`,
		"rm 42",
	}, exec.calls)
}

func TestRunREPL_UsageErrorsDoNotDispatch(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader("get\nfind\nput\nrm\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	assert.Empty(t, exec.calls)
	joined := strings.Join(*out, "\n")
	for _, usage := range []string{"usage: get <key>", "usage: find <field> <text>", "usage: put <json>", "usage: rm <key>"} {
		assert.Contains(t, joined, usage)
	}
}

func TestDispatch_Quit(t *testing.T) {
	for _, cmd := range []string{"exit", "quit"} {
		done, err := dispatch(context.Background(), &fakeExec{}, cmd, "")
		require.NoError(t, err)
		assert.True(t, done)
	}
}
