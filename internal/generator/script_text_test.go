package generator

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_UserTextIsLiteral(t *testing.T) {
	t.Parallel()

	res := generate(t, mustLoad(t, `metadata:
  name: web
  description: "line1\ntouch injected"
spec:
  monitors:
    - name: m
      send: "GET /`+"`id`"+`"
      receive: 'cost $(id)'
  profiles:
    - name: win
      type: tcp
      description: 'C:\'
    - name: cost
      description: 'cost $(touch injected2)'
`))

	lines := res.Sequence.Lines()
	assert.Contains(t, lines, "# Description: line1 touch injected")
	assert.NotContains(t, lines, "touch injected")
	assert.Contains(t, lines, "  send \"GET /\\`id\\`\" \\")
	assert.Contains(t, lines, `  recv "cost \$(id)" || echo "Monitor m already exists"`)
	assert.Contains(t, lines, `  description "C:\\" || echo "Profile win already exists"`)
	assert.Contains(t, lines, `  description "cost \$(touch injected2)" || echo "Profile cost already exists"`)
	assert.Contains(t, lines, `echo "Connecting to F5: $F5_HOST"`)
}

// TestGenerate_ScriptRunsUnderBash runs a generated script with tmsh
// stubbed out and checks that config text never executes.
func TestGenerate_ScriptRunsUnderBash(t *testing.T) {
	bash, err := exec.LookPath("bash")
	if err != nil {
		t.Skip("bash not available")
	}

	tests := []struct {
		name string
		doc  string
	}{
		{"newline in description", "metadata:\n  description: \"line1\\ntouch injected\"\n"},
		{"trailing backslash", "spec:\n  profiles:\n    - name: win\n      description: 'C:\\'\n"},
		{"command substitution", "spec:\n  profiles:\n    - name: cost\n      description: 'cost $(touch injected)'\n"},
		{"backticks in payload", "spec:\n  monitors:\n    - name: m\n      send: '`touch injected`'\n"},
		{"substitution in metadata description", "metadata:\n  description: 'a $(touch injected) `touch injected2`'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			script := filepath.Join(dir, "configure.sh")
			res := generate(t, mustLoad(t, tt.doc))
			require.NoError(t, os.WriteFile(script, []byte(res.Sequence.String()+"\n"), 0o600))

			out, err := exec.Command(bash, "-n", script).CombinedOutput()
			require.NoError(t, err, string(out))

			// #nosec G204
			cmd := exec.Command(bash, "-c", "tmsh() { :; }; source ./configure.sh")
			cmd.Dir = dir
			cmd.Env = append(os.Environ(), "F5_HOST=test")
			out, err = cmd.CombinedOutput()
			require.NoError(t, err, string(out))

			assert.NoFileExists(t, filepath.Join(dir, "injected"))
			assert.NoFileExists(t, filepath.Join(dir, "injected2"))
		})
	}
}
