// Package matching scores students against the internship and project
// catalogs and builds skill gap reports. Everything here is a pure function of
// its arguments plus the injected Random source; no package touches storage.
package matching

import (
	"fmt"
	"strings"
)

type Mode string

const (
	// ModeExact counts case-sensitive exact skill matches.
	ModeExact Mode = "exact"
	// ModeFuzzy scores case-insensitive substring overlap as a percentage and
	// adds a bounded random bonus.
	ModeFuzzy Mode = "fuzzy"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeExact:
		return ModeExact, nil
	case ModeFuzzy:
		return ModeFuzzy, nil
	}
	return "", fmt.Errorf("unknown match mode %q", s)
}

const defaultMaxBonus = 10

type Engine struct {
	mode     Mode
	maxBonus int
	roles    *RoleTable
	rnd      Random
}

type Option func(*Engine)

func WithMode(m Mode) Option { return func(e *Engine) { e.mode = m } }

// WithMaxBonus sets the upper bound of the fuzzy-mode bonus. Negative values
// are ignored.
func WithMaxBonus(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxBonus = n
		}
	}
}

func New(roles *RoleTable, rnd Random, opts ...Option) *Engine {
	e := &Engine{
		mode:     ModeExact,
		maxBonus: defaultMaxBonus,
		roles:    roles,
		rnd:      rnd,
	}
	for _, o := range opts {
		o(e)
	}
	if e.roles == nil {
		e.roles = DefaultRoles()
	}
	if e.rnd == nil {
		e.rnd = NewRandom(0)
	}
	return e
}

func (e *Engine) Mode() Mode { return e.mode }

func (e *Engine) Roles() *RoleTable { return e.roles }

func skillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

// countMembers counts entries of items present in set; duplicates in items
// count once per occurrence.
func countMembers(set map[string]struct{}, items []string) int {
	n := 0
	for _, it := range items {
		if _, ok := set[it]; ok {
			n++
		}
	}
	return n
}
