package matching

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoles(t *testing.T) {
	roles := DefaultRoles()

	assert.Equal(t, "Full Stack Developer", roles.Default())
	assert.Contains(t, roles.Names(), "DevOps Engineer")

	resolved, skills := roles.Lookup("DevOps Engineer")
	assert.Equal(t, "DevOps Engineer", resolved)
	assert.Equal(t, []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Linux"}, skills)
}

func TestRoleTable_LookupReturnsCopy(t *testing.T) {
	roles := DefaultRoles()
	_, skills := roles.Lookup("DevOps Engineer")
	skills[0] = "changed"

	_, again := roles.Lookup("DevOps Engineer")
	assert.Equal(t, "Docker", again[0])
}

func TestParseRoles_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":           "roles: []\n",
		"missing default": "default: Nope\nroles:\n  - name: A\n    skills: [x]\n",
		"duplicate":       "default: A\nroles:\n  - name: A\n  - name: A\n",
		"unnamed":         "default: A\nroles:\n  - skills: [x]\n",
		"not yaml":        "default: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRoles([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadRoles_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	doc := "default: QA\nroles:\n  - name: QA\n    skills: [Selenium, Jest]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	roles, err := LoadRoles(path)
	require.NoError(t, err)

	resolved, skills := roles.Lookup("anything")
	assert.Equal(t, "QA", resolved)
	assert.Equal(t, []string{"Selenium", "Jest"}, skills)
}

func TestRoleTable_SetDefault(t *testing.T) {
	roles := DefaultRoles()
	require.NoError(t, roles.SetDefault("Data Scientist"))
	assert.Equal(t, "Data Scientist", roles.Default())
	assert.Error(t, roles.SetDefault("Wizard"))
}
