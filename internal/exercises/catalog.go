package exercises

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

//go:embed assets/exercises.csv
var defaultCatalogCsv []byte

var (
	ErrCategoryNotFound = errors.New("exercise category not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

type Exercise struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Difficulty  string `json:"difficulty"`
	Equipment   string `json:"equipment"`
	Description string `json:"description"`
}

// Catalog is the read-only exercise library, grouped by muscle group.
type Catalog struct {
	categories []string
	// keyed by lowercased category name
	exercises map[string][]Exercise
}

// LoadCatalog reads the catalog CSV from path, or the embedded one when path
// is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(csv.NewReader(bytes.NewReader(defaultCatalogCsv)))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open exercises catalog: %w", err)
	}
	defer f.Close()

	return NewCatalog(csv.NewReader(f))
}

func NewCatalog(catalogCsvReader *csv.Reader) (*Catalog, error) {
	c := &Catalog{
		exercises: make(map[string][]Exercise),
	}

	log.Println("reading exercises CSV ...")

	catalogCsvReader.Comma = ';'
	catalogCsvReader.Comment = '#'
	count := 0
	for {
		record, err := catalogCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 5 {
			return nil, fmt.Errorf("record [%s] does not have 5 elements", record)
		}

		// CATEGORY;NAME;DIFFICULTY;EQUIPMENT;DESCRIPTION
		ex := Exercise{
			Category:    strings.TrimSpace(record[0]),
			Name:        strings.TrimSpace(record[1]),
			Difficulty:  strings.TrimSpace(record[2]),
			Equipment:   strings.TrimSpace(record[3]),
			Description: strings.TrimSpace(record[4]),
		}
		if ex.Category == "" || ex.Name == "" {
			return nil, fmt.Errorf("record [%s] is missing category or name", record)
		}

		key := strings.ToLower(ex.Category)
		if _, ok := c.exercises[key]; !ok {
			c.categories = append(c.categories, ex.Category)
		}
		c.exercises[key] = append(c.exercises[key], ex)
		count++
	}

	if count == 0 {
		return nil, errors.New("exercises catalog is empty")
	}

	log.Printf("exercises CSV read %d exercises in %d categories", count, len(c.categories))

	return c, nil
}

// Categories returns the category names in file order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// List returns the category's exercises whose name contains search,
// ignoring case. An empty search matches everything.
func (c *Catalog) List(category, search string) ([]Exercise, error) {
	exercises, ok := c.exercises[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}

	search = strings.ToLower(strings.TrimSpace(search))
	filtered := make([]Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if strings.Contains(strings.ToLower(ex.Name), search) {
			filtered = append(filtered, ex)
		}
	}
	return filtered, nil
}

func (c *Catalog) Get(category, name string) (*Exercise, error) {
	exercises, ok := c.exercises[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}

	for _, ex := range exercises {
		if strings.EqualFold(ex.Name, strings.TrimSpace(name)) {
			found := ex
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrExerciseNotFound, category, name)
}
