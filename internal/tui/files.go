package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"geopoint/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".geojson" || ext == ".json" || ext == ".csv" || ext == ".kml" || ext == ".wkt" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads supported formats into the model.
func (m *Model) loadPath(p string) {
	set, err := LoadPath(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.selPath = p
		return
	}
	m.setData(set, p)
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  points=%d", set.Len())
}

// LoadPath dispatches on file extension to the matching loader.
func LoadPath(p string) (geom.PointSet, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".geojson", ".json":
		return geom.LoadGeoJSON(p)
	case ".csv":
		return geom.LoadCSV(p)
	case ".kml":
		return geom.LoadKML(p)
	case ".wkt":
		data, err := os.ReadFile(p)
		if err != nil {
			return geom.PointSet{}, err
		}
		return geom.ParseWKT(string(data))
	default:
		return geom.PointSet{}, fmt.Errorf("unsupported file: %s", filepath.Ext(p))
	}
}
