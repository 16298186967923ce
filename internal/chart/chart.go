// Package chart provides the seed chart of accounts used when a company is set up.
package chart

import (
	_ "embed"
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default_chart.yaml
var defaultChartYAML []byte

// Entry is one account template in a chart.
type Entry struct {
	Number string             `yaml:"number"`
	Name   string             `yaml:"name"`
	Type   domain.AccountType `yaml:"type"`
}

// Chart is a named set of account templates.
type Chart struct {
	Name     string  `yaml:"name"`
	Accounts []Entry `yaml:"accounts"`
}

// Parse decodes and validates a chart definition.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse chart: %w", err)
	}
	seen := make(map[string]bool, len(c.Accounts))
	for _, e := range c.Accounts {
		if e.Number == "" || e.Name == "" {
			return nil, fmt.Errorf("chart %q: account number and name are required", c.Name)
		}
		if !e.Type.Valid() {
			return nil, fmt.Errorf("chart %q: account %s has unknown type %q", c.Name, e.Number, e.Type)
		}
		if seen[e.Number] {
			return nil, fmt.Errorf("chart %q: duplicate account number %s", c.Name, e.Number)
		}
		seen[e.Number] = true
	}
	return &c, nil
}

// Default returns the embedded default chart.
func Default() *Chart {
	c, err := Parse(defaultChartYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Find returns the entry with the given number.
func (c *Chart) Find(number string) (Entry, bool) {
	for _, e := range c.Accounts {
		if e.Number == number {
			return e, true
		}
	}
	return Entry{}, false
}
