package render

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Terminal renders markdown with glamour. Building the style can block on
// terminal background detection, so it happens on its own goroutine and
// Render waits for it.
//
// The build goroutine owns nothing but the Terminal's result fields and exits
// as soon as the build returns. A Render that stops waiting leaves it to
// finish in the background; a later Render picks up the result.
type Terminal struct {
	policy Policy
	done   chan struct{}
	r      *glamour.TermRenderer
	err    error
}

// NewTerminal starts building a renderer. An empty style picks one from the
// terminal background; otherwise style names a glamour standard style
// ("dark", "light", "notty") or a JSON style file.
func NewTerminal(style string, width int, policy Policy) *Terminal {
	return newTerminal(func() (*glamour.TermRenderer, error) {
		styleOpt := glamour.WithAutoStyle()
		if style != "" {
			styleOpt = glamour.WithStylePath(style)
		}
		return glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	}, policy)
}

func newTerminal(build func() (*glamour.TermRenderer, error), policy Policy) *Terminal {
	t := &Terminal{policy: policy, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.r, t.err = build()
	}()
	return t
}

// Ready reports whether the renderer has been built, successfully or not.
func (t *Terminal) Ready() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Done is closed once the build goroutine has exited.
func (t *Terminal) Done() <-chan struct{} {
	return t.done
}

func (t *Terminal) Render(ctx context.Context, markdown string) (string, error) {
	if err := Await(ctx, t, t.policy); err != nil {
		return "", fmt.Errorf("await terminal renderer: %w", err)
	}
	if t.err != nil {
		return "", fmt.Errorf("build terminal renderer: %w", t.err)
	}
	out, err := t.r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
