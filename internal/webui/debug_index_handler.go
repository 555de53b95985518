package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"github.com/YnHaddad/MSBA382Dash/internal/app"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

// DataTypes lists the views the debug page can dump.
var DataTypes = []string{"status", "indicators", "countries", "years", "table", "config"}

type WebUI struct {
	*app.Application
}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func writeDebugData(w http.ResponseWriter, title string, data any) {
	// The page carries its own inline styles.
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; frame-ancestors 'none';")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title:     title,
		Pre:       spew.Sdump(data),
		DataTypes: DataTypes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data any
	var title string

	ds := webUI.Manager.Dataset()

	switch {
	case dataType == "status":
		data = webUI.Manager.Status()
		title = "Dataset - Status"
	case ds == nil:
		data = map[string]string{"error": "No dataset loaded."}
		title = "Dataset - Not loaded"
	case dataType == "indicators":
		data = ds.Indicators()
		title = "Dataset - Indicators"
	case dataType == "countries":
		data = ds.Countries()
		title = "Dataset - Countries"
	case dataType == "years":
		data = ds.Years()
		title = "Dataset - Years"
	case dataType == "table":
		indicator := r.URL.Query().Get("indicator")
		table, ok := ds.Table(indicator)
		if !ok {
			data = map[string]string{"error": "Unknown indicator " + indicator + "."}
			title = "Dataset - Unknown table"
			break
		}
		data = table.Rows()
		title = "Dataset - " + indicator
	case dataType == "config":
		data = webUI.DatasetConfig
		title = "Dataset - Manager config"
	default:
		data = map[string]string{
			"error": "Please use one of the following: status, indicators, countries, years, table (with indicator=CODE), config.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
