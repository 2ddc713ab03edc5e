package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/linprimer/internal/lesson"
)

type ExportData struct {
	Section  string             `json:"section"`
	Index    int                `json:"index"`
	Caption  string             `json:"caption"`
	Steps    int                `json:"steps"`
	Readouts []string           `json:"readouts"`
	Ticks    []int              `json:"ticks"`
	Values   [][]float64        `json:"values"`
	Metrics  map[string]float64 `json:"metrics"`
	Final    lesson.Frame       `json:"final"`
}

func newExportData(run *Run) ExportData {
	data := ExportData{
		Section:  run.Section,
		Index:    run.Index,
		Caption:  run.Caption,
		Steps:    len(run.Ticks),
		Readouts: run.Readouts,
		Ticks:    run.Ticks,
		Values:   run.Values,
		Metrics:  run.Metrics,
		Final:    run.Final,
	}
	if data.Readouts == nil {
		data.Readouts = []string{}
	}
	return data
}

// ExportJSON writes run to path, or to stdout when path is "-".
func ExportJSON(path string, run *Run) error {
	if path == "-" {
		return WriteJSON(os.Stdout, run)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, run)
}

func WriteJSON(w io.Writer, run *Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(run))
}
