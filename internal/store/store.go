// Package store records animations headlessly and keeps the recordings on
// disk, one directory per run holding metadata.json and frames.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRunNotFound  = errors.New("store: run not found")
	ErrAmbiguousRun = errors.New("store: run id prefix is ambiguous")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID        string             `json:"id"`
	Name      string             `json:"name,omitempty"`
	Section   string             `json:"section"`
	Index     int                `json:"index"`
	Caption   string             `json:"caption"`
	Ticks     int                `json:"ticks"`
	FPS       int                `json:"fps"`
	Precision int                `json:"precision"`
	Timestamp time.Time          `json:"timestamp"`
	Readouts  []string           `json:"readouts"`
	Metrics   map[string]float64 `json:"metrics"`
}

// SaveOptions carries the context a run was recorded in.
type SaveOptions struct {
	Name      string
	FPS       int
	Precision int
}

// Frames is the table read back from frames.csv.
type Frames struct {
	Columns []string
	Ticks   []int
	Rows    [][]float64
}

// Column returns one readout column.
func (f *Frames) Column(name string) ([]float64, bool) {
	return column(f.Columns, f.Rows, name)
}

func (s *Store) Save(run *Run, opts SaveOptions) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      opts.Name,
		Section:   run.Section,
		Index:     run.Index,
		Caption:   run.Caption,
		Ticks:     len(run.Ticks),
		FPS:       opts.FPS,
		Precision: opts.Precision,
		Timestamp: time.Now().UTC(),
		Readouts:  run.Readouts,
		Metrics:   run.Metrics,
	}
	if meta.Readouts == nil {
		meta.Readouts = []string{}
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(runDir, "frames.csv"), run); err != nil {
		return "", err
	}
	return runID, nil
}

func writeFrames(path string, run *Run) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"tick"}, run.Readouts...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, tick := range run.Ticks {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(tick))
		for _, v := range run.Values[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	slices.SortFunc(runs, func(a, b RunMetadata) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// Resolve expands a run id prefix or a saved run name to a full id.
func (s *Store) Resolve(ref string) (string, error) {
	runs, err := s.List()
	if err != nil {
		return "", err
	}

	var found []string
	for _, r := range runs {
		if r.ID == ref || (r.Name != "" && r.Name == ref) {
			return r.ID, nil
		}
		if ref != "" && strings.HasPrefix(r.ID, ref) {
			found = append(found, r.ID)
		}
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrRunNotFound, ref)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d runs", ErrAmbiguousRun, ref, len(found))
	}
}

func (s *Store) LoadFrames(runID string) (*Frames, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	frames := &Frames{Columns: []string{}}
	if len(records) == 0 {
		return frames, nil
	}
	if len(records[0]) > 1 {
		frames.Columns = records[0][1:]
	}

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		tick, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}

		row := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				v = 0
			}
			row = append(row, v)
		}
		frames.Ticks = append(frames.Ticks, tick)
		frames.Rows = append(frames.Rows, row)
	}
	return frames, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
