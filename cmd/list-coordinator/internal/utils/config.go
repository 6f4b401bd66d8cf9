package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/sarpt/list-coordinator/pkg/device/memory"
)

const (
	configFileName = "config.json"
	nodeSeparator  = ":"
)

var (
	appDirId = "lc"

	// DefaultAppDir is used when no app dir is provided.
	DefaultAppDir = filepath.Join("~", fmt.Sprintf(".%s", appDirId))

	// ErrInvalidNode informs about malformed node definition passed in flags.
	ErrInvalidNode = errors.New("invalid node definition")
)

// Config describes simulated nodes and which of them should be connected.
type Config struct {
	Nodes   []memory.NodeConfig `json:"Nodes"`
	Connect []string            `json:"Connect"`
}

// HandleAppDir expands provided app dir, or uses the default one, making sure it exists.
func HandleAppDir(appDir string) (string, error) {
	if appDir == "" {
		appDir = DefaultAppDir
	}

	expanded, err := homedir.Expand(appDir)
	if err != nil {
		return "", fmt.Errorf("could not resolve app dir %s: %w", appDir, err)
	}

	err = os.MkdirAll(expanded, 0750)
	return expanded, err
}

// ConfigPath returns config file location inside the app dir.
func ConfigPath(appDir string) string {
	return filepath.Join(appDir, configFileName)
}

// LoadConfig reads config from path. Missing file results in empty config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	} else if err != nil {
		return Config{}, fmt.Errorf("could not read config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	for _, node := range cfg.Nodes {
		if node.Name == "" || node.Lists < 1 {
			return Config{}, fmt.Errorf("%w in %s: name '%s' with %d lists", ErrInvalidNode, path, node.Name, node.Lists)
		}
	}

	return cfg, nil
}

// ParseNode parses node given as NAME:LISTS.
func ParseNode(definition string) (memory.NodeConfig, error) {
	parts := strings.Split(definition, nodeSeparator)
	if len(parts) != 2 || parts[0] == "" {
		return memory.NodeConfig{}, fmt.Errorf("%w: '%s' should be NAME%sLISTS", ErrInvalidNode, definition, nodeSeparator)
	}

	lists, err := strconv.Atoi(parts[1])
	if err != nil || lists < 1 {
		return memory.NodeConfig{}, fmt.Errorf("%w: '%s' requires positive lists count", ErrInvalidNode, definition)
	}

	return memory.NodeConfig{Name: parts[0], Lists: lists}, nil
}

// Merge returns config with nodes and connections of other added. Nodes of other win on name conflict.
func (c Config) Merge(other Config) Config {
	nodes := map[string]memory.NodeConfig{}
	for _, node := range append(append([]memory.NodeConfig{}, c.Nodes...), other.Nodes...) {
		nodes[node.Name] = node
	}

	merged := Config{}
	for _, node := range nodes {
		merged.Nodes = append(merged.Nodes, node)
	}
	sort.Slice(merged.Nodes, func(i, j int) bool {
		return merged.Nodes[i].Name < merged.Nodes[j].Name
	})

	connect := map[string]bool{}
	for _, name := range append(append([]string{}, c.Connect...), other.Connect...) {
		if !connect[name] {
			connect[name] = true
			merged.Connect = append(merged.Connect, name)
		}
	}

	return merged
}

// Reconcile brings pool to the state described by next, given it previously reflected previous.
func Reconcile(pool *memory.Pool, previous, next Config) []error {
	var errs []error

	configured := map[string]bool{}
	for _, node := range next.Nodes {
		configured[node.Name] = true
		pool.Configure(node)
	}

	for _, node := range previous.Nodes {
		if !configured[node.Name] {
			pool.Remove(node.Name)
		}
	}

	connect := map[string]bool{}
	for _, name := range next.Connect {
		connect[name] = true
		if err := pool.Connect(name); err != nil {
			errs = append(errs, err)
		}
	}

	for _, name := range previous.Connect {
		if connect[name] || !configured[name] {
			continue
		}

		if err := pool.Disconnect(name); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}
