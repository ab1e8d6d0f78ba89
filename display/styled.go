package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/brensch/paintbots/game"
	"github.com/charmbracelet/lipgloss"
)

// Styled draws each square two cells wide with its paint as the background.
type Styled struct {
	red, blue, white lipgloss.Style
	wall             lipgloss.Style
	robot            lipgloss.Style
	frame            lipgloss.Style
}

// NewStyled picks a color profile for w; pass os.Stdout for a terminal.
func NewStyled(w io.Writer) *Styled {
	r := lipgloss.NewRenderer(w)
	return &Styled{
		red:   r.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")),
		blue:  r.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
		white: r.NewStyle().Foreground(lipgloss.Color("7")),
		wall:  r.NewStyle().Foreground(lipgloss.Color("8")),
		robot: r.NewStyle().Bold(true),
		frame: r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Glyph is the two-character body of a square, before styling.
func Glyph(v game.SquareView) string {
	switch {
	case v.Terrain == game.Wall:
		return "##"
	case v.RedRobot:
		return "R "
	case v.BlueRobot:
		return "B "
	case v.Terrain == game.Rock:
		return "/\\"
	case v.Terrain == game.Fog:
		return ".."
	default:
		return "  "
	}
}

func (s *Styled) square(v game.SquareView) string {
	g := Glyph(v)
	if v.Terrain == game.Wall {
		return s.wall.Render(g)
	}
	st := s.white
	switch v.Color {
	case game.Red:
		st = s.red
	case game.Blue:
		st = s.blue
	}
	if v.Occupied() {
		st = st.Inherit(s.robot)
	}
	return st.Render(g)
}

// Grid renders the interior and wall ring without a frame.
func (s *Styled) Grid(scan *game.LongRangeScan) string {
	rows := make([]string, 0, game.Dim)
	for i := range scan {
		var sb strings.Builder
		for j := range scan[i] {
			sb.WriteString(s.square(scan[i][j]))
		}
		rows = append(rows, sb.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Render frames the grid with a title and the current territory counts.
func (s *Styled) Render(title string, scan *game.LongRangeScan) string {
	status := fmt.Sprintf("red %d  blue %d", scan.CountColor(game.Red), scan.CountColor(game.Blue))
	body := lipgloss.JoinVertical(lipgloss.Left, title, s.Grid(scan), status)
	return s.frame.Render(body)
}
