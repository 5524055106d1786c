package stacks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danieljhkim/stack-select/internal/selection"
	"gopkg.in/yaml.v3"
)

// ServiceDef describes one installable service of a stack and its initial
// selection state.
type ServiceDef struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display-name,omitempty"`
	Selected    bool   `yaml:"selected"`
	Installed   bool   `yaml:"installed,omitempty"`
	Selectable  bool   `yaml:"selectable"`
	Disabled    bool   `yaml:"disabled,omitempty"`
}

// Stack is a versioned catalog of services offered by the wizard.
type Stack struct {
	Name        string       `yaml:"name"`
	Version     string       `yaml:"version"`
	Description string       `yaml:"description,omitempty"`
	Services    []ServiceDef `yaml:"services"`
}

// Records returns a fresh record collection for one wizard session.
func (s *Stack) Records() selection.Records {
	records := make(selection.Records, 0, len(s.Services))
	for _, svc := range s.Services {
		display := svc.DisplayName
		if display == "" {
			display = svc.Name
		}
		records = append(records, &selection.Record{
			Name:          svc.Name,
			DisplayName:   display,
			Selected:      svc.Selected,
			Installed:     svc.Installed,
			CanBeSelected: svc.Selectable,
			Disabled:      svc.Disabled,
		})
	}
	return records
}

// WithRecords returns a copy of the stack whose service selection reflects
// records. Services without a matching record keep their definition.
func (s *Stack) WithRecords(records selection.Records) *Stack {
	out := &Stack{
		Name:        s.Name,
		Version:     s.Version,
		Description: s.Description,
		Services:    make([]ServiceDef, len(s.Services)),
	}
	copy(out.Services, s.Services)
	for i := range out.Services {
		if r := records.Find(out.Services[i].Name); r != nil {
			out.Services[i].Selected = r.Selected
		}
	}
	return out
}

// Validate checks that the stack has a version and unique service names.
func (s *Stack) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("stack name required")
	}
	if _, err := selection.ParseStackVersion(s.Version); err != nil {
		return fmt.Errorf("stack %s: %w", s.Name, err)
	}
	if err := s.Records().Validate(); err != nil {
		return fmt.Errorf("stack %s: %w", s.Name, err)
	}
	return nil
}

// Encode writes the stack as YAML.
func (s *Stack) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode stack %s: %w", s.Name, err)
	}
	return enc.Close()
}

// LoadFile reads a stack catalog from a YAML file.
func LoadFile(path string) (*Stack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a stack catalog from YAML and validates it.
func Parse(data []byte) (*Stack, error) {
	var s Stack
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
