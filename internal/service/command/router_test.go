package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandevgo/docbot/internal/core"
)

type fakeCommand struct {
	name string
	out  string
	err  error
	args []string
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return "fake" }
func (f *fakeCommand) Execute(_ context.Context, _ string, args []string) (string, error) {
	f.args = args
	return f.out, f.err
}

func TestRouterIgnoresPlainText(t *testing.T) {
	router := New([]core.Command{})
	_, handled := router.Execute(context.Background(), "s1", "what is the revenue?")
	assert.False(t, handled)
}

func TestRouterDispatchesWithArgs(t *testing.T) {
	cmd := &fakeCommand{name: "search", out: "results"}
	router := New([]core.Command{cmd})

	out, handled := router.Execute(context.Background(), "s1", "/search revenue growth")
	assert.True(t, handled)
	assert.Equal(t, "results", out)
	assert.Equal(t, []string{"revenue", "growth"}, cmd.args)
}

func TestRouterUnknownCommand(t *testing.T) {
	router := New([]core.Command{})
	out, handled := router.Execute(context.Background(), "s1", "/nosuch")
	assert.True(t, handled)
	assert.Contains(t, out, "Unknown command")
}

func TestRouterReportsCommandError(t *testing.T) {
	cmd := &fakeCommand{name: "load", err: errors.New("no such file")}
	router := New([]core.Command{cmd})

	out, handled := router.Execute(context.Background(), "s1", "/load missing.txt")
	assert.True(t, handled)
	assert.Contains(t, out, "no such file")
}
