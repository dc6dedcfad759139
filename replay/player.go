package replay

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/roadsearch/report"
	"github.com/katalvlaran/roadsearch/search"
)

// DefaultDelay is the pause between frames.
const DefaultDelay = 500 * time.Millisecond

// Player writes frames to an io.Writer with a pause between them.
type Player struct {
	out    io.Writer
	delay  time.Duration
	styles Styles
}

// Option configures a Player.
type Option func(*Player)

// WithDelay sets the pause between frames. Zero or negative plays at once.
func WithDelay(d time.Duration) Option {
	return func(p *Player) {
		if d < 0 {
			d = 0
		}
		p.delay = d
	}
}

// WithPlain disables styling.
func WithPlain() Option {
	return func(p *Player) { p.styles = PlainStyles() }
}

// WithStyles replaces the styles.
func WithStyles(s Styles) Option {
	return func(p *Player) { p.styles = s }
}

// NewPlayer returns a Player writing to out with DefaultDelay and DefaultStyles.
func NewPlayer(out io.Writer, opts ...Option) *Player {
	p := &Player{out: out, delay: DefaultDelay, styles: DefaultStyles()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Delay returns the configured pause.
func (p *Player) Delay() time.Duration { return p.delay }

// Play writes every frame of r, pausing between frames.
//
// Cancellation is checked before each frame and during each pause; the
// context error is returned as is. A Result without steps plays only its
// final frame.
func (p *Player) Play(ctx context.Context, r *search.Result) error {
	frames := Frames(r)
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			if err := p.wait(ctx); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(p.out, p.Render(f)+"\n"); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
	}

	return nil
}

func (p *Player) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}
	t := time.NewTimer(p.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Render returns the text of one frame.
func (p *Player) Render(f Frame) string {
	st := p.styles
	var b strings.Builder

	if f.Final {
		b.WriteString(st.Title.Render(fmt.Sprintf("%s: done after %d steps", report.Label(f.Algorithm), f.Total)))
		b.WriteByte('\n')
		if len(f.Path) == 0 {
			b.WriteString(st.Missing.Render("No path found."))
		} else {
			fmt.Fprintf(&b, "%s %s (%s)", st.Label.Render("path:"),
				st.Path.Render(report.FormatPath(f.Path)), report.FormatDistance(f.Distance))
		}
		b.WriteByte('\n')

		return b.String()
	}

	title := fmt.Sprintf("%s: step %d/%d", report.Label(f.Algorithm), f.Index, f.Total)
	if f.Step.DepthLimit != search.NoDepthLimit {
		title += fmt.Sprintf(" (depth limit %d)", f.Step.DepthLimit)
	}
	b.WriteString(st.Title.Render(title))
	b.WriteByte('\n')

	if f.Bidirectional() {
		p.line(&b, "forward current:", st.Current.Render(f.Step.Current))
		p.line(&b, "forward frontier:", p.list(st.Frontier, f.Step.Frontier))
		p.line(&b, "forward explored:", p.list(st.Explored, f.Step.Explored))
		p.line(&b, "backward current:", st.Current.Render(f.Step.CurrentBackward))
		p.line(&b, "backward frontier:", p.list(st.Backward, f.Step.BackwardFrontier))
		p.line(&b, "backward explored:", p.list(st.Explored, f.Step.BackwardExplored))

		return b.String()
	}

	p.line(&b, "current:", st.Current.Render(f.Step.Current))
	p.line(&b, "frontier:", p.list(st.Frontier, f.Step.Frontier))
	p.line(&b, "explored:", p.list(st.Explored, f.Step.Explored))

	return b.String()
}

func (p *Player) line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", p.styles.Label.Render(label), value)
}

func (p *Player) list(s lipgloss.Style, cities []string) string {
	if len(cities) == 0 {
		return p.styles.Label.Render("-")
	}

	return s.Render(strings.Join(cities, ", "))
}
