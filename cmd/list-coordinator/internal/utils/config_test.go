package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarpt/list-coordinator/pkg/device/memory"
)

func TestParseNode(t *testing.T) {
	node, err := ParseNode("ADC1:4")
	require.NoError(t, err)
	assert.Equal(t, memory.NodeConfig{Name: "ADC1", Lists: 4}, node)

	for _, definition := range []string{"ADC1", ":4", "ADC1:0", "ADC1:x", "A:1:2"} {
		_, err := ParseNode(definition)
		assert.ErrorIs(t, err, ErrInvalidNode, definition)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := ConfigPath(dir)

	missing, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Empty(t, missing.Nodes)

	require.NoError(t, os.WriteFile(path, []byte(`{"Nodes":[{"Name":"ADC1","Lists":2,"ListNames":["Main"]}],"Connect":["ADC1"]}`), 0640))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ADC1"}, cfg.Connect)
	require.Len(t, cfg.Nodes, 1)
	assert.Equal(t, []string{"Main"}, cfg.Nodes[0].ListNames)

	require.NoError(t, os.WriteFile(path, []byte(`{"Nodes":[{"Name":"ADC1"}]}`), 0640))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidNode)
}

func TestConfig_MergePrefersOtherNodes(t *testing.T) {
	base := Config{
		Nodes:   []memory.NodeConfig{{Name: "ADC2", Lists: 1}, {Name: "ADC1", Lists: 1}},
		Connect: []string{"ADC1"},
	}
	flags := Config{
		Nodes:   []memory.NodeConfig{{Name: "ADC1", Lists: 3}},
		Connect: []string{"ADC1", "ADC2"},
	}

	merged := base.Merge(flags)

	assert.Equal(t, []memory.NodeConfig{{Name: "ADC1", Lists: 3}, {Name: "ADC2", Lists: 1}}, merged.Nodes)
	assert.Equal(t, []string{"ADC1", "ADC2"}, merged.Connect)
}

func TestReconcile(t *testing.T) {
	// given
	pool := memory.NewPool(nil)
	first := Config{
		Nodes:   []memory.NodeConfig{{Name: "ADC1", Lists: 1}, {Name: "ADC2", Lists: 1}},
		Connect: []string{"ADC1", "ADC2"},
	}
	require.Empty(t, Reconcile(pool, Config{}, first))

	second := Config{
		Nodes:   []memory.NodeConfig{{Name: "ADC1", Lists: 1}, {Name: "ADC3", Lists: 1}},
		Connect: []string{"ADC3", "ADC9"},
	}

	// when
	errs := Reconcile(pool, first, second)

	// then
	assert.Len(t, errs, 1)
	assert.Equal(t, []string{"ADC1", "ADC3"}, pool.Configured())

	adc1, ok := pool.Node("ADC1")
	require.True(t, ok)
	assert.False(t, adc1.Connected())

	adc3, ok := pool.Node("ADC3")
	require.True(t, ok)
	assert.True(t, adc3.Connected())
}

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	// given
	logger, _ := test.NewNullLogger()
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 4)
	require.NoError(t, WatchConfig(ctx, path, logger, func(cfg Config) {
		changes <- cfg
	}))

	// when
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0640))
	require.NoError(t, os.WriteFile(path, []byte(`{"Nodes":[{"Name":"ADC1","Lists":1}]}`), 0640))

	// then
	select {
	case cfg := <-changes:
		require.Len(t, cfg.Nodes, 1)
		assert.Equal(t, "ADC1", cfg.Nodes[0].Name)
	case <-time.After(2 * time.Second):
		t.Fatal("config change was not noticed")
	}
}

func TestHandleAppDir_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".lc")

	handled, err := HandleAppDir(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, handled)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.json"), ConfigPath(handled))
}
