package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/ibflow/internal/body"
	"github.com/san-kum/ibflow/internal/geom"
)

// Store keeps generated bodies on disk, one directory per body with a
// metadata.json and a points.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type BodyMetadata struct {
	ID         string        `json:"id"`
	Shape      string        `json:"shape"`
	Timestamp  time.Time     `json:"timestamp"`
	Points     int           `json:"points"`
	RefX       float64       `json:"ref_x"`
	RefY       float64       `json:"ref_y"`
	Rotation   [2][2]float64 `json:"rotation"`
	MinSpacing float64       `json:"min_spacing"`
	MaxSpacing float64       `json:"max_spacing"`
}

func (s *Store) Save(shape string, b *body.Body) (string, error) {
	bodyID := fmt.Sprintf("%s_%d", shape, time.Now().Unix())
	bodyDir := filepath.Join(s.baseDir, bodyID)

	if err := os.MkdirAll(bodyDir, 0755); err != nil {
		return "", err
	}

	cfg := b.Config()
	meta := BodyMetadata{
		ID:        bodyID,
		Shape:     shape,
		Timestamp: time.Now(),
		Points:    b.NumPoints(),
		RefX:      cfg.Ref.X,
		RefY:      cfg.Ref.Y,
		Rotation:  [2][2]float64(cfg.Rot),
	}
	if min, max, err := b.SpacingStats(); err == nil {
		meta.MinSpacing = min
		meta.MaxSpacing = max
	}

	metaPath := filepath.Join(bodyDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(bodyDir, "points.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"xb", "yb", "x", "y"}); err != nil {
		return "", err
	}

	bodyPts := b.Points()
	inertialPts := b.InertialPoints()
	for i := range bodyPts {
		row := []string{
			strconv.FormatFloat(bodyPts[i].X, 'f', 9, 64),
			strconv.FormatFloat(bodyPts[i].Y, 'f', 9, 64),
			strconv.FormatFloat(inertialPts[i].X, 'f', 9, 64),
			strconv.FormatFloat(inertialPts[i].Y, 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return bodyID, nil
}

func (s *Store) List() ([]BodyMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BodyMetadata{}, nil
		}
		return nil, err
	}

	bodies := make([]BodyMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta BodyMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		bodies = append(bodies, meta)
	}

	return bodies, nil
}

func (s *Store) Load(bodyID string) (*BodyMetadata, error) {
	metaPath := filepath.Join(s.baseDir, bodyID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta BodyMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadBody reconstructs a body from its stored body-fixed points and
// placement.
func (s *Store) LoadBody(bodyID string) (*body.Body, error) {
	meta, err := s.Load(bodyID)
	if err != nil {
		return nil, err
	}

	csvPath := filepath.Join(s.baseDir, bodyID, "points.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return body.NewEmpty(), nil
	}

	pts := make([]geom.Vec2, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		pts = append(pts, geom.Vec2{X: x, Y: y})
	}

	cfg := geom.Config{
		Ref: geom.Vec2{X: meta.RefX, Y: meta.RefY},
		Rot: geom.Rot(meta.Rotation),
	}
	return body.NewPlaced(pts, cfg), nil
}
