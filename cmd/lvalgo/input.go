package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvalgo/sched"
)

// parseInts reads a comma-separated list such as "1, 4,5". An empty or
// whitespace-only string is an empty list.
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// parseLevelOrder reads "1,2,null,3" where null, nil or # mark a missing node.
func parseLevelOrder(s string) ([]*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]*int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch strings.ToLower(p) {
		case "null", "nil", "#":
			out = append(out, nil)
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		out = append(out, &v)
	}

	return out, nil
}

// mergeFile is the YAML input of "merge --file".
type mergeFile struct {
	Lists [][]int `yaml:"lists"`
}

// agingConfig tunes the aging scheduler; zero values keep the defaults.
type agingConfig struct {
	Interval int  `yaml:"interval"`
	Step     *int `yaml:"step"`
}

// scheduleFile is the YAML input of "schedule --file".
type scheduleFile struct {
	Algorithm string          `yaml:"algorithm"`
	Aging     agingConfig     `yaml:"aging"`
	Horizon   int             `yaml:"horizon"`
	Processes []sched.Process `yaml:"processes"`
	Tasks     []sched.Task    `yaml:"tasks"`
}

// loadYAML decodes path into v, rejecting unknown keys.
func loadYAML(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}
