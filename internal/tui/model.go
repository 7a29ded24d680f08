package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geopoint/internal/config"
	"geopoint/internal/geom"
)

type Model struct {
	width  int
	height int

	cfg *config.Config

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	set geom.PointSet

	// last rendered canvas size (for inspect/measure)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// measure selection: indices into set.Points, -1 when unpicked
	measuring bool
	selA      int
	selB      int

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverHasXY bool
	hoverX     float64
	hoverY     float64

	// points table
	showTable bool
	tbl       table.Model

	st styles
}

func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		cfg:         cfg,
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "geopoint ready",
		selA:        -1,
		selB:        -1,
		st:          newStyles(cfg),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT or MULTIPOINT). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// points table (columns set when data loads)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg *config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
