package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goforj/flyweight"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCirclesFromStdin(t *testing.T) {
	out, logs, err := run(t, "3\nred\ngreen\nred\n", "circles")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Trial = 3", lines[0])
	assert.Equal(t, "[red]  radius : 1", lines[1])
	assert.Equal(t, "[green]  radius : 1", lines[2])
	assert.Equal(t, "[red]  radius : 1", lines[3])

	assert.Equal(t, 1, strings.Count(logs, `"[red] created"`))
	assert.Equal(t, 1, strings.Count(logs, `"[green] created"`))
}

func TestCirclesFromArgsWithMetrics(t *testing.T) {
	t.Setenv("FLYWEIGHT_METRICS__ENABLED", "true")
	t.Setenv("FLYWEIGHT_CIRCLES__DRAWS", "5")

	out, _, err := run(t, "", "circles", "red", "green", "red", "blue", "red")
	require.NoError(t, err)
	assert.Contains(t, out, "flyweight_constructions_total{cache=circles} 3\n")
	assert.Contains(t, out, "flyweight_operations_total{cache=circles,op=get,result=hit} 2\n")
}

func TestPersonsReportsUnknownVariants(t *testing.T) {
	out, logs, err := run(t, "4\nA\nb\nZ\nC\n", "persons")
	require.Error(t, err)
	assert.ErrorIs(t, err, flyweight.ErrUnknownVariant)

	assert.Equal(t, "A: person A\nB: person B\nC: person C\n", out)
	assert.Contains(t, logs, `unknown variant \"Z\"`)
}

func TestPersonsFromArgs(t *testing.T) {
	out, _, err := run(t, "", "persons", "C", "A")
	require.NoError(t, err)
	assert.Equal(t, "C: person C\nA: person A\n", out)
}

func TestInvalidLogLevelFlag(t *testing.T) {
	_, _, err := run(t, "", "persons", "--log-level", "loud", "A")
	assert.ErrorContains(t, err, "logging.level")
}

func TestReadRequests(t *testing.T) {
	got, err := readRequests(strings.NewReader("2\nred\nblue\nignored\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, got)

	got, err = readRequests(strings.NewReader(""), []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)

	_, err = readRequests(strings.NewReader(""), nil)
	assert.Error(t, err)
	_, err = readRequests(strings.NewReader("zero\n"), nil)
	assert.ErrorContains(t, err, "invalid request count")
	_, err = readRequests(strings.NewReader("3\nred\n"), nil)
	assert.ErrorContains(t, err, "expected 3 requests, got 1")
}
