package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultPlanIsValid(t *testing.T) {
	plan := DefaultPlan()
	require.NoError(t, plan.Validate())

	d, err := plan.TestDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}

func TestLoad(t *testing.T) {
	path := writePlan(t, `
workloads: [fifo, wrap]
capacities: [8, 1024]
iterations: 3
duration: 250ms
`)
	plan, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"fifo", "wrap"}, plan.Workloads)
	assert.Equal(t, []int{8, 1024}, plan.Capacities)
	assert.Equal(t, 3, plan.Iterations)

	d, err := plan.TestDuration()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	path := writePlan(t, `
capacities: [64]
`)
	plan, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{64}, plan.Capacities)
	assert.Equal(t, DefaultPlan().Workloads, plan.Workloads)
	assert.Equal(t, DefaultPlan().Iterations, plan.Iterations)
	assert.Equal(t, DefaultPlan().Duration, plan.Duration)
}

func TestLoadRejectsUnknownWorkload(t *testing.T) {
	path := writePlan(t, `
workloads: [mpmc]
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown workload")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writePlan(t, `
duration: fast
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid duration")
}

func TestLoadRejectsNegativeCapacity(t *testing.T) {
	path := writePlan(t, `
capacities: [-1]
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "negative capacity")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
