package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/IvanBrykalov/virtgrid/grid"
	"github.com/IvanBrykalov/virtgrid/internal/config"
	"github.com/IvanBrykalov/virtgrid/provider"
)

const chromeLines = 2 // header + status bar

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Reverse(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// galleryModel is the bubbletea program: it owns the surface, drives the
// controller from key and window events, and renders the canvas.
type galleryModel struct {
	ctrl    *grid.Controller[*tile]
	surface *gallerySurface

	renderers [2]grid.Renderer[*tile]
	active    int

	cellW, cellH int
	itemCount    int

	status    string
	ready     bool
	attachErr error

	log *zap.Logger
}

func newGalleryModel(set config.Settings, photos *provider.Cached[string], log *zap.Logger) *galleryModel {
	m := &galleryModel{
		surface:   &gallerySurface{},
		cellW:     set.CellWidth,
		cellH:     set.CellHeight,
		itemCount: set.Items,
		status:    "loading",
		log:       log,
	}
	m.renderers = [2]grid.Renderer[*tile]{
		photoRenderer{photos: photos},
		placeholderRenderer{},
	}
	m.ctrl = grid.New(grid.Options[*tile]{
		Renderer:   m.renderers[0],
		CellWidth:  set.CellWidth,
		CellHeight: set.CellHeight,
		ItemCount:  set.Items,
		Logger:     log,
		OnViewportChange: func(first int, ok bool) {
			if !ok {
				m.status = "no items"
				return
			}
			m.status = fmt.Sprintf("item %d of %d", first+1, m.itemCount)
		},
	})
	return m
}

func (m *galleryModel) Init() tea.Cmd { return nil }

func (m *galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, max(0, msg.Height-chromeLines)
		if !m.ready {
			m.surface.width, m.surface.height = w, h
			m.ready = true
			if err := m.ctrl.Attach(m.surface); err != nil {
				m.attachErr = err
				return m, tea.Quit
			}
		} else {
			m.surface.resize(w, h)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.scrollBy(-1)
		case "down", "j":
			m.scrollBy(1)
		case "pgup", "b":
			m.scrollBy(-m.surface.height)
		case "pgdown", "f", " ":
			m.scrollBy(m.surface.height)
		case "home", "g":
			m.surface.scrollTo(0)
		case "end", "G":
			m.surface.scrollTo(m.surface.maxScroll())
		case "r":
			m.swapRenderer()
		case "i":
			m.ctrl.InvalidateAll(true)
		}
	}
	return m, nil
}

func (m *galleryModel) scrollBy(lines int) {
	if m.ready {
		m.surface.scrollTo(m.surface.scrollTop + lines)
	}
}

func (m *galleryModel) swapRenderer() {
	m.active = 1 - m.active
	if err := m.ctrl.SetRenderer(m.renderers[m.active]); err != nil {
		m.log.Error("renderer swap failed", zap.Error(err))
		m.active = 1 - m.active
	}
}

func (m *galleryModel) View() string {
	if !m.ready {
		return "starting..."
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		headerStyle.Render("virtgrid gallery"),
		hintStyle.Render("  ↑/↓ scroll · pgup/pgdn page · r swap renderer · i redraw · q quit"),
	)
	body := m.surface.render(m.cellW, m.cellH)
	status := statusStyle.Width(m.surface.width).Render(
		fmt.Sprintf(" %s · %d live handles ", m.status, m.ctrl.Live()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}
