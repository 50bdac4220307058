package tui

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/ecs"
	"github.com/vovakirdan/paints/internal/sim"
)

// Drawing constants
const (
	bucketAspect = 0.6 // Bucket height relative to its width, in world units
	iconCols     = 6
	iconRows     = 3
)

var (
	colorFrame    = core.RGBA(0.85, 0.85, 0.85, 1)
	colorConveyor = core.RGBA(0.45, 0.45, 0.45, 1)
	colorHUD      = core.RGBA(0.6, 0.6, 0.6, 1)
)

// Viewport maps the world rectangle onto a character grid. The world origin
// is the center of the grid and +Y points up.
type Viewport struct {
	Width, Height float64 // World units
	Cols, Rows    int
}

// NewViewport creates a viewport of a world area drawn into cols x rows cells.
func NewViewport(width, height float64, cols, rows int) Viewport {
	return Viewport{Width: width, Height: height, Cols: max(0, cols), Rows: max(0, rows)}
}

// Cell returns the grid cell containing world point p. The result may lie
// outside the grid.
func (v Viewport) Cell(p core.Vec3) (x, y int) {
	x = int(math.Floor((p.X + v.Width/2) * float64(v.Cols) / v.Width))
	y = int(math.Floor((v.Height/2 - p.Y) * float64(v.Rows) / v.Height))
	return x, y
}

// WorldX returns the world X of the center of column col.
func (v Viewport) WorldX(col int) float64 {
	return (float64(col)+0.5)*v.Width/float64(v.Cols) - v.Width/2
}

// SpanX converts a world width to a column count, at least 1.
func (v Viewport) SpanX(w float64) int {
	return max(1, int(math.Round(w*float64(v.Cols)/v.Width)))
}

// SpanY converts a world height to a row count, at least 1.
func (v Viewport) SpanY(h float64) int {
	return max(1, int(math.Round(h*float64(v.Rows)/v.Height)))
}

// Renderer draws a simulation into a screen buffer.
type Renderer struct {
	assets core.Assets
}

// NewRenderer creates a renderer that recognizes the given asset handles.
func NewRenderer(assets core.Assets) *Renderer {
	return &Renderer{assets: assets}
}

// Draw clears scr and draws the current frame of s.
func (r *Renderer) Draw(scr *core.Screen, s *sim.Simulation) {
	scr.Clear()
	cfg := s.Config()
	vp := NewViewport(cfg.Screen.Width, cfg.Screen.Height, scr.Width(), scr.Height())
	w := s.World()

	if s.Phase() != sim.PhaseMainMenu {
		bucketRows := max(3, vp.SpanY(cfg.Bucket.Width*bucketAspect))
		r.drawConveyor(scr, vp, cfg.Bucket.Y, bucketRows)
		r.drawNozzles(scr, vp, w, s.Nozzles())
		r.drawBuckets(scr, vp, w, max(3, vp.SpanX(cfg.Bucket.Width)), bucketRows)

		gs := s.Game()
		scr.DrawText(1, 0, fmt.Sprintf("Buckets %d/%d", gs.BucketsScored, cfg.Bucket.SpawnMax), colorHUD)
	}

	r.drawIcons(scr, vp, w)
	r.drawTexts(scr, vp, w)
}

func (r *Renderer) drawConveyor(scr *core.Screen, vp Viewport, y float64, bucketRows int) {
	_, cy := vp.Cell(core.Vec3{Y: y})
	row := cy + bucketRows/2 + 2
	scr.DrawText(0, row, strings.Repeat("═", scr.Width()), colorConveyor)
}

func (r *Renderer) drawNozzles(scr *core.Screen, vp Viewport, w *ecs.World, nozzles []sim.Nozzle) {
	for i, nz := range nozzles {
		pos, ok := w.WorldPosition(nz.ID)
		if !ok {
			continue
		}
		cx, cy := vp.Cell(pos)
		scr.DrawText(cx-1, cy-1, fmt.Sprintf("[%d]", i+1), colorFrame)
		scr.DrawText(cx-1, cy, "▼▼▼", nz.Color)
	}
}

func (r *Renderer) drawBuckets(scr *core.Screen, vp Viewport, w *ecs.World, cols, rows int) {
	for _, b := range w.Buckets() {
		pos, ok := w.WorldPosition(b.ID)
		if !ok {
			continue
		}
		paint, label, ok := w.BucketColors(b)
		if !ok {
			continue
		}
		cx, cy := vp.Cell(pos)
		box := core.NewRect(cx-cols/2, cy-rows/2, cols, rows)

		scr.FillRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), core.Cell{Rune: ' ', BG: paint})
		scr.DrawBox(box, colorFrame)
		scr.DrawText(box.X+1, box.Bottom(), strings.Repeat("▀", box.W-2), label)
	}
}

// drawIcons draws sprite-only decorations as solid blocks of their color.
func (r *Renderer) drawIcons(scr *core.Screen, vp Viewport, w *ecs.World) {
	for _, e := range w.Entities() {
		sp, ok := w.Sprite(e)
		if !ok || sp.Asset != r.assets.Icon {
			continue
		}
		pos, ok := w.WorldPosition(e)
		if !ok {
			continue
		}
		paint, ok := w.Paint(e)
		if !ok {
			continue
		}
		cx, cy := vp.Cell(pos)
		scr.FillRect(core.NewRect(cx-iconCols/2, cy-iconRows/2, iconCols, iconRows), core.Cell{Rune: ' ', BG: *paint})
	}
}

type textItem struct {
	pos     core.Vec3
	content string
	color   core.Color
	overlay bool
}

// drawTexts draws visible texts back to front. Overlays are centered on
// the screen inside a framed, cleared panel.
func (r *Renderer) drawTexts(scr *core.Screen, vp Viewport, w *ecs.World) {
	var items []textItem
	for _, e := range w.Entities() {
		txt, ok := w.Text(e)
		if !ok || !txt.Visible {
			continue
		}
		pos, ok := w.WorldPosition(e)
		if !ok {
			continue
		}
		color := core.ColorWhite
		if p, ok := w.Paint(e); ok {
			color = *p
		}
		items = append(items, textItem{
			pos:     pos,
			content: txt.Content,
			color:   color,
			overlay: w.Tags(e)&(ecs.TagPausedText|ecs.TagScoreText) != 0,
		})
	}
	slices.SortStableFunc(items, func(a, b textItem) int {
		return cmp.Compare(a.pos.Z, b.pos.Z)
	})

	for _, it := range items {
		cx, cy := vp.Cell(it.pos)
		lines := strings.Split(it.content, "\n")
		if it.overlay {
			width := 0
			for _, l := range lines {
				width = max(width, utf8.RuneCountInString(l))
			}
			panel := core.NewRect((scr.Width()-width)/2-2, cy-len(lines)/2-1, width+4, len(lines)+2)
			scr.FillRect(panel, core.Cell{Rune: ' '})
			scr.DrawBox(panel, colorFrame)
			scr.DrawTextCentered(cy, it.content, it.color)
			continue
		}
		top := cy - len(lines)/2
		for i, l := range lines {
			n := utf8.RuneCountInString(l)
			// Keep labels on screen in narrow terminals
			x := core.Clamp(cx-n/2, 0, max(0, scr.Width()-n))
			scr.DrawText(x, top+i, l, it.color)
		}
	}
}

type cellStyle struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(map[cellStyle]lipgloss.Style)

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[key]
			if !ok {
				style = styleFor(key)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// styleFor builds a truecolor style. Zero alpha keeps the terminal default.
func styleFor(k cellStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if k.fg.A > 0 {
		style = style.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if k.bg.A > 0 {
		style = style.Background(lipgloss.Color(k.bg.Hex()))
	}
	return style
}
