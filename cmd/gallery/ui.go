package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/IvanBrykalov/virtgrid/grid"
	"github.com/IvanBrykalov/virtgrid/provider"
)

// tile is the visual handle the engine manages: a bordered text box
// positioned on the terminal canvas. Units are character cells.
type tile struct {
	index     int // -1 while unassigned
	label     string
	border    borderSet
	top, left int
}

type borderSet struct{ tl, tr, bl, br, h, v rune }

var (
	asciiBorder = borderSet{'+', '+', '+', '+', '-', '|'}
	roundBorder = borderSet{'╭', '╮', '╰', '╯', '─', '│'}
)

// placeholderRenderer is the debug representation: bare boxes labeled with
// the raw virtual index.
type placeholderRenderer struct{}

func (placeholderRenderer) Create() *tile { return &tile{index: -1} }

func (placeholderRenderer) Assign(t *tile, index int) {
	t.index = index
	t.label = fmt.Sprintf("idx %d", index)
	t.border = asciiBorder
}

func (placeholderRenderer) Abandon(t *tile) { t.index, t.label = -1, "" }

// photoRenderer shows item content from a provider, standing in for
// thumbnail-backed cells.
type photoRenderer struct {
	photos *provider.Cached[string]
}

func (r photoRenderer) Create() *tile { return &tile{index: -1} }

func (r photoRenderer) Assign(t *tile, index int) {
	t.index = index
	t.border = roundBorder
	label, err := r.photos.Get(context.Background(), index)
	if err != nil {
		label = "unavailable"
	}
	t.label = label
}

func (photoRenderer) Abandon(t *tile) { t.index, t.label = -1, "" }

// gallerySurface is the host surface: it owns the display list of tiles,
// reports the viewport, and forwards scroll/resize events to subscribed
// listeners (the controller).
type gallerySurface struct {
	width, height int
	scrollTop     int
	extent        int
	tiles         []*tile
	listeners     []grid.SurfaceListener
}

func (s *gallerySurface) Viewport() (int, int)   { return s.width, s.height }
func (s *gallerySurface) ScrollTop() int         { return s.scrollTop }
func (s *gallerySurface) SetContentExtent(h int) { s.extent = h }
func (s *gallerySurface) Append(t *tile)         { s.tiles = append(s.tiles, t) }

func (s *gallerySurface) Remove(t *tile) {
	for i, x := range s.tiles {
		if x == t {
			s.tiles = append(s.tiles[:i], s.tiles[i+1:]...)
			return
		}
	}
}

func (s *gallerySurface) Place(t *tile, top, left int) { t.top, t.left = top, left }

func (s *gallerySurface) Subscribe(l grid.SurfaceListener) {
	s.listeners = append(s.listeners, l)
}

func (s *gallerySurface) Unsubscribe(l grid.SurfaceListener) {
	for i, x := range s.listeners {
		if x == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *gallerySurface) maxScroll() int { return max(0, s.extent-s.height) }

// scrollTo clamps the offset and notifies listeners, like a scrollbar.
func (s *gallerySurface) scrollTo(top int) {
	top = min(max(0, top), s.maxScroll())
	if top == s.scrollTop {
		return
	}
	s.scrollTop = top
	for _, l := range s.listeners {
		l.SurfaceScrolled(top)
	}
}

func (s *gallerySurface) resize(w, h int) {
	s.width, s.height = w, h
	for _, l := range s.listeners {
		l.SurfaceResized()
	}
}

// render composites the visible slice of the display list onto a rune
// canvas of viewport size.
func (s *gallerySurface) render(cellW, cellH int) string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	canvas := make([][]rune, s.height)
	for y := range canvas {
		row := make([]rune, s.width)
		for x := range row {
			row[x] = ' '
		}
		canvas[y] = row
	}
	for _, t := range s.tiles {
		if t.index >= 0 {
			s.drawTile(canvas, t, cellW, cellH)
		}
	}

	var b strings.Builder
	for y, row := range canvas {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

func (s *gallerySurface) drawTile(canvas [][]rune, t *tile, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	y0 := t.top - s.scrollTop
	for dy := 0; dy < h; dy++ {
		y := y0 + dy
		if y < 0 || y >= len(canvas) {
			continue
		}
		for dx := 0; dx < w; dx++ {
			x := t.left + dx
			if x < 0 || x >= s.width {
				continue
			}
			r := ' '
			switch {
			case dy == 0 && dx == 0:
				r = t.border.tl
			case dy == 0 && dx == w-1:
				r = t.border.tr
			case dy == h-1 && dx == 0:
				r = t.border.bl
			case dy == h-1 && dx == w-1:
				r = t.border.br
			case dy == 0 || dy == h-1:
				r = t.border.h
			case dx == 0 || dx == w-1:
				r = t.border.v
			}
			canvas[y][x] = r
		}
		if dy == h/2 {
			s.drawLabel(canvas, y, t.left+1, w-2, t.label)
		}
	}
}

func (s *gallerySurface) drawLabel(canvas [][]rune, y, x0, width int, label string) {
	if y < 0 || y >= len(canvas) || width <= 0 {
		return
	}
	runes := []rune(label)
	if len(runes) > width {
		runes = runes[:width]
	}
	start := x0 + (width-len(runes))/2
	for i, r := range runes {
		x := start + i
		if x >= 0 && x < s.width {
			canvas[y][x] = r
		}
	}
}
