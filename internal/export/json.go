package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/ropesim/internal/sim"
)

// RunRecord is the JSON form of one headless run.
type RunRecord struct {
	Preset    string             `json:"preset,omitempty"`
	Particles int                `json:"particles"`
	Length    float64            `json:"rope_length"`
	Duration  float64            `json:"duration"`
	Frames    int                `json:"frames"`
	Times     []float64          `json:"times"`
	Tip       [][3]float64       `json:"tip"`
	Stretch   []float64          `json:"stretch"`
	Metrics   map[string]float64 `json:"metrics"`
}

// NewRunRecord flattens a sim result for serialization.
func NewRunRecord(preset string, particles int, length, duration float64, result *sim.Result) RunRecord {
	rec := RunRecord{
		Preset:    preset,
		Particles: particles,
		Length:    length,
		Duration:  duration,
		Frames:    result.Frames,
		Times:     result.Times,
		Tip:       make([][3]float64, len(result.Tip)),
		Stretch:   result.Stretch,
		Metrics:   result.Metrics,
	}
	for i, p := range result.Tip {
		rec.Tip[i] = [3]float64{p.X(), p.Y(), p.Z()}
	}
	return rec
}

// WriteJSON encodes the record with indentation.
func WriteJSON(w io.Writer, rec RunRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// SaveJSON writes the record to a file.
func SaveJSON(path string, rec RunRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, rec)
}
