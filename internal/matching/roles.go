package matching

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

//go:embed roles.yaml
var builtinRoles []byte

type roleFile struct {
	Default string `yaml:"default"`
	Roles   []struct {
		Name   string   `yaml:"name"`
		Skills []string `yaml:"skills"`
	} `yaml:"roles"`
}

// RoleTable maps a role name to its required skills, in declared order.
// It is read-only after construction.
type RoleTable struct {
	defaultRole string
	names       []string
	skills      map[string][]string
}

func ParseRoles(data []byte) (*RoleTable, error) {
	var f roleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse role table: %w", err)
	}
	if len(f.Roles) == 0 {
		return nil, errors.New("role table has no roles")
	}

	t := &RoleTable{skills: make(map[string][]string, len(f.Roles))}
	for i, r := range f.Roles {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("role #%d has no name", i+1)
		}
		if _, dup := t.skills[name]; dup {
			return nil, fmt.Errorf("role %q declared twice", name)
		}
		t.names = append(t.names, name)
		t.skills[name] = append([]string(nil), r.Skills...)
	}

	if err := t.SetDefault(f.Default); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadRoles reads the role table from path, or returns the built-in table
// when path is empty.
func LoadRoles(path string) (*RoleTable, error) {
	if path == "" {
		return ParseRoles(builtinRoles)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role table: %w", err)
	}
	return ParseRoles(data)
}

// DefaultRoles returns the built-in table.
func DefaultRoles() *RoleTable {
	t, err := ParseRoles(builtinRoles)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *RoleTable) SetDefault(name string) error {
	name = strings.TrimSpace(name)
	if _, ok := t.skills[name]; !ok {
		return fmt.Errorf("default role %q is not in the role table", name)
	}
	t.defaultRole = name
	return nil
}

func (t *RoleTable) Default() string { return t.defaultRole }

func (t *RoleTable) Names() []string { return append([]string(nil), t.names...) }

// Lookup resolves role to itself when known and to the default role otherwise.
func (t *RoleTable) Lookup(role string) (resolved string, skills []string) {
	resolved = role
	req, ok := t.skills[role]
	if !ok {
		resolved = t.defaultRole
		req = t.skills[t.defaultRole]
	}
	return resolved, append([]string(nil), req...)
}
