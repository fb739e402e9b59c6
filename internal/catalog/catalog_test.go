package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landmark/internal/models"
	geo "landmark/models"
)

const yamlCatalog = `buildings:
  - name: N Seoul Tower
    description: Communication and observation tower on Namsan
    coordinates:
      lat: 37.5512
      lon: 126.9882
      alt: 479
  - name: Gyeongbokgung
    description: Main royal palace of the Joseon dynasty
    coordinates:
      lat: 37.5796
      lon: 126.9770
      alt: 40
`

const jsonCatalog = `{"buildings": [
  {"name": "Lotte World Tower", "description": "Supertall skyscraper", "coordinates": {"lat": 37.5126, "lon": 127.1025, "alt": 30}}
]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		c, err := LoadFile(writeFile(t, "catalog.yaml", yamlCatalog))
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())
		b := c.Buildings()
		assert.Equal(t, "N Seoul Tower", b[0].Name)
		assert.Equal(t, geo.Coordinates{Lat: 37.5512, Lon: 126.9882, Alt: 479}, b[0].Coordinates)
		assert.Equal(t, "Gyeongbokgung", b[1].Name)
	})

	t.Run("yml", func(t *testing.T) {
		c, err := LoadFile(writeFile(t, "catalog.yml", yamlCatalog))
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("json", func(t *testing.T) {
		c, err := LoadFile(writeFile(t, "catalog.json", jsonCatalog))
		require.NoError(t, err)
		require.Equal(t, 1, c.Len())
		assert.Equal(t, "Supertall skyscraper", c.Buildings()[0].Description)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "catalog.txt", yamlCatalog))
		assert.ErrorContains(t, err, "must be .json, .yaml or .yml")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "catalog.json", "{"))
		assert.ErrorContains(t, err, "JSON")
	})
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		buildings []models.Building
		wantErr   error
		wantMsg   string
	}{
		{
			name:      "duplicate names",
			buildings: []models.Building{{Name: "A"}, {Name: "B"}, {Name: "A"}},
			wantErr:   ErrDuplicateName,
		},
		{
			name:      "empty name",
			buildings: []models.Building{{Name: ""}},
			wantErr:   models.ErrEmptyName,
		},
		{
			name:      "latitude out of range",
			buildings: []models.Building{{Name: "Pole", Coordinates: geo.Coordinates{Lat: 91}}},
			wantMsg:   "latitude",
		},
		{
			name:      "longitude out of range",
			buildings: []models.Building{{Name: "Dateline", Coordinates: geo.Coordinates{Lon: -181}}},
			wantMsg:   "longitude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.buildings)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestCatalog_BuildingsIsCopy(t *testing.T) {
	c, err := New([]models.Building{{Name: "A"}})
	require.NoError(t, err)
	c.Buildings()[0].Name = "changed"
	assert.Equal(t, "A", c.Buildings()[0].Name)
}

type memStore struct {
	objects map[string]models.StoredBuilding
	keys    []string
	listErr error
}

func (m *memStore) ListKeys(_ context.Context, _, _ string) ([]string, error) {
	return m.keys, m.listErr
}

func (m *memStore) GetBuildingObject(_ context.Context, _, key string) (*models.StoredBuilding, error) {
	b, ok := m.objects[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &b, nil
}

func TestLoadS3(t *testing.T) {
	store := &memStore{
		keys: []string{"buildings/a.json", "buildings/b.json"},
		objects: map[string]models.StoredBuilding{
			"buildings/a.json": {Building: models.Building{Name: "A"}, Position: 0},
			"buildings/b.json": {Building: models.Building{Name: "B"}, Position: 1},
		},
	}
	c, err := LoadS3(context.Background(), store, "catalog", "buildings/")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "B", c.Buildings()[1].Name)

	store.keys = append(store.keys, "buildings/missing.json")
	_, err = LoadS3(context.Background(), store, "catalog", "buildings/")
	assert.ErrorContains(t, err, "missing.json")

	store.listErr = errors.New("bucket gone")
	_, err = LoadS3(context.Background(), store, "catalog", "buildings/")
	assert.ErrorContains(t, err, "bucket gone")
}

// fakeRows serves fixed rows through the pgx.Rows interface.
type fakeRows struct {
	rows [][]any
	i    int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.rows[r.i-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.i >= len(r.rows) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.i-1]
	*dest[0].(*string) = row[0].(string)
	*dest[1].(*string) = row[1].(string)
	*dest[2].(*float64) = row[2].(float64)
	*dest[3].(*float64) = row[3].(float64)
	*dest[4].(*float64) = row[4].(float64)
	return nil
}

type fakeQuerier struct {
	rows  *fakeRows
	err   error
	query string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.query = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestLoadPostgres(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{"Tower", "tall", 37.5, 127.0, 100.0},
		{"Palace", "old", 37.6, 126.9, 40.0},
	}}}

	c, err := LoadPostgres(context.Background(), q)
	require.NoError(t, err)
	assert.Contains(t, q.query, "ORDER BY position")
	require.Equal(t, 2, c.Len())
	assert.Equal(t, models.Building{Name: "Tower", Description: "tall", Coordinates: geo.Coordinates{Lat: 37.5, Lon: 127.0, Alt: 100}}, c.Buildings()[0])
}

func TestLoadPostgres_Errors(t *testing.T) {
	_, err := LoadPostgres(context.Background(), &fakeQuerier{err: errors.New("connection refused")})
	assert.ErrorContains(t, err, "connection refused")

	_, err = LoadPostgres(context.Background(), &fakeQuerier{rows: &fakeRows{err: errors.New("reset by peer")}})
	assert.ErrorContains(t, err, "reset by peer")

	_, err = LoadPostgres(context.Background(), &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{"Dup", "", 0.0, 0.0, 0.0},
		{"Dup", "", 0.0, 0.0, 0.0},
	}}})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestLoadS3_RestoresPublishedOrder(t *testing.T) {
	store := &memStore{
		keys: []string{
			"buildings/gyeongbokgung.json",
			"buildings/lotte-world-tower.json",
			"buildings/n-seoul-tower.json",
		},
		objects: map[string]models.StoredBuilding{
			"buildings/gyeongbokgung.json":     {Building: models.Building{Name: "Gyeongbokgung"}, Position: 1},
			"buildings/lotte-world-tower.json": {Building: models.Building{Name: "Lotte World Tower"}, Position: 2},
			"buildings/n-seoul-tower.json":     {Building: models.Building{Name: "N Seoul Tower"}, Position: 0},
		},
	}

	c, err := LoadS3(context.Background(), store, "catalog", "buildings/")
	require.NoError(t, err)

	var names []string
	for _, b := range c.Buildings() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"N Seoul Tower", "Gyeongbokgung", "Lotte World Tower"}, names)
}

func TestLoadS3_EqualPositionsKeepKeyOrder(t *testing.T) {
	store := &memStore{
		keys: []string{"buildings/a.json", "buildings/b.json", "buildings/c.json"},
		objects: map[string]models.StoredBuilding{
			"buildings/a.json": {Building: models.Building{Name: "A"}},
			"buildings/b.json": {Building: models.Building{Name: "B"}},
			"buildings/c.json": {Building: models.Building{Name: "C"}},
		},
	}

	c, err := LoadS3(context.Background(), store, "catalog", "buildings/")
	require.NoError(t, err)
	assert.Equal(t, "A", c.Buildings()[0].Name)
	assert.Equal(t, "C", c.Buildings()[2].Name)
}
