// Package menu holds the dish catalogue chefs draw their ingredients from.
package menu

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Sentinel kinds for catalogue errors.
var (
	ErrEmptyCatalogue = errors.New("menu catalogue is empty")
	ErrLoadCatalogue  = errors.New("load menu catalogue failed")
)

// Dish is one catalogue item.
type Dish struct {
	Day         string `yaml:"day" json:"day"`
	Name        string `yaml:"name" json:"name"`
	Category    string `yaml:"category" json:"category"`
	Ingredients string `yaml:"ingredients" json:"ingredients"`
	DietType    string `yaml:"diet_type" json:"diet_type"`
}

// Catalogue is a fixed list of dishes with a random ingredient draw.
type Catalogue struct {
	dishes []Dish

	mu  sync.Mutex
	rng *rand.Rand
}

// Option applies a configuration option to the Catalogue.
type Option func(*Catalogue)

// WithSeed makes the ingredient draw deterministic.
func WithSeed(seed int64) Option {
	return func(c *Catalogue) {
		c.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // not security sensitive
	}
}

// New creates a catalogue over dishes. Dishes without ingredients are dropped.
func New(dishes []Dish, opts ...Option) (*Catalogue, error) {
	c := &Catalogue{
		rng: rand.New(rand.NewSource(rand.Int63())), //nolint:gosec // not security sensitive
	}
	for _, d := range dishes {
		if strings.TrimSpace(d.Ingredients) != "" {
			c.dishes = append(c.dishes, d)
		}
	}
	if len(c.dishes) == 0 {
		return nil, ErrEmptyCatalogue
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Default returns the built-in catalogue.
func Default(opts ...Option) *Catalogue {
	c, err := New(builtin, opts...)
	if err != nil {
		panic(err) // builtin is never empty
	}
	return c
}

// file is the YAML layout accepted by LoadFile.
type file struct {
	Dishes []Dish `yaml:"dishes"`
}

// LoadFile reads a catalogue from a YAML document with a top-level "dishes" list.
func LoadFile(path string, opts ...Option) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalogue, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalogue, path, err)
	}
	c, err := New(f.Dishes, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalogue, path, err)
	}
	return c, nil
}

// Dishes returns a copy of the catalogue.
func (c *Catalogue) Dishes() []Dish {
	out := make([]Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

// RandomIngredients returns the ingredient list of a randomly chosen dish.
func (c *Catalogue) RandomIngredients() string {
	c.mu.Lock()
	i := c.rng.Intn(len(c.dishes))
	c.mu.Unlock()
	return c.dishes[i].Ingredients
}
