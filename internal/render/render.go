package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/passdrill/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_render.go github.com/KirkDiggler/passdrill/internal/render Renderer

// Renderer shows the drill after each pass. The drill never waits on it.
type Renderer interface {
	RenderPass(frame *models.PassFrame) error
}

// TextRenderer prints each frame as a list of line contents
type TextRenderer struct {
	out io.Writer
}

// NewText creates a renderer writing frames to out
func NewText(out io.Writer) *TextRenderer {
	return &TextRenderer{out: out}
}

// RenderPass implements Renderer
func (r *TextRenderer) RenderPass(frame *models.PassFrame) error {
	var b strings.Builder

	marker := ""
	if frame.Oscillated {
		marker = " *"
	}
	fmt.Fprintf(&b, "pass %d: player %d line %d -> line %d%s\n",
		frame.Pass, frame.PlayerID, frame.SourceLine, frame.TargetLine, marker)

	for i, line := range frame.Lines {
		ids := make([]string, len(line))
		for j, id := range line {
			if id == frame.BallHolder {
				ids[j] = fmt.Sprintf("(%d)", id)
				continue
			}
			ids[j] = fmt.Sprint(id)
		}
		fmt.Fprintf(&b, "  %d: %s\n", i, strings.Join(ids, " "))
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}
