package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/g-m-twostay/go-ordtree/Trees"
)

// Scenario is a scripted sequence of tree operations, decoded from TOML:
//
//	name = "delete root"
//	variant = "avl"
//
//	[[ops]]
//	op = "put"
//	key = 5
//	value = "five"
type Scenario struct {
	Name    string `toml:"name"`
	Variant string `toml:"variant"`
	Ops     []Op   `toml:"ops"`
}

// Op is one step of a Scenario. Op.Op is one of put, get, delete, contains.
// ExpectMissing marks get, delete and contains steps whose key should be
// absent.
type Op struct {
	Op            string `toml:"op"`
	Key           int    `toml:"key"`
	Value         string `toml:"value"`
	ExpectMissing bool   `toml:"expect_missing"`
}

// Result is the state of the tree after a replay.
type Result struct {
	Variant  Trees.Variant
	Keys     []int
	Size     int
	Height   int
	Balanced bool
	Levels   [][]int
	Warnings int
}

// decodeScenario reads a Scenario and rejects keys it doesn't know, so a
// misspelt field isn't silently ignored.
func decodeScenario(r io.Reader) (*Scenario, error) {
	var sc Scenario
	md, err := toml.NewDecoder(r).Decode(&sc)
	if err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode scenario: unknown keys %s", strings.Join(keys, ", "))
	}
	return &sc, nil
}

func loadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := decodeScenario(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// resolveVariant picks the flag value if set, then the scenario's, then Plain.
func resolveVariant(flag string, sc *Scenario) (Trees.Variant, error) {
	switch {
	case flag != "":
		return Trees.ParseVariant(flag)
	case sc.Variant != "":
		return Trees.ParseVariant(sc.Variant)
	}
	return Trees.Plain, nil
}

// replay applies sc to a new tree of the given variant. A get, delete or
// contains whose outcome disagrees with ExpectMissing is logged as a warning
// and counted; replay carries on. Unknown ops abort the replay.
func replay(ctx context.Context, sc *Scenario, variant Trees.Variant) (*Result, error) {
	logger := loggerFromContext(ctx)
	tree := Trees.New[int, string](variant)
	warnings := 0
	check := func(i int, o Op, missing bool) {
		if missing != o.ExpectMissing {
			warnings++
			logger.Warn("unexpected result", "step", i, "op", o.Op, "key", o.Key, "missing", missing)
		}
	}
	for i, o := range sc.Ops {
		switch o.Op {
		case "put":
			tree.Put(o.Key, o.Value)
			logger.Debug("put", "step", i, "key", o.Key, "value", o.Value, "size", tree.Size())
		case "get":
			v, err := tree.Get(o.Key)
			if err != nil && !errors.Is(err, Trees.ErrMissingKey) {
				return nil, err
			}
			logger.Debug("get", "step", i, "key", o.Key, "value", v, "err", err)
			check(i, o, err != nil)
		case "delete":
			err := tree.Delete(o.Key)
			if err != nil && !errors.Is(err, Trees.ErrMissingKey) {
				return nil, err
			}
			logger.Debug("delete", "step", i, "key", o.Key, "err", err, "size", tree.Size())
			check(i, o, err != nil)
		case "contains":
			ok := tree.Contains(o.Key)
			logger.Debug("contains", "step", i, "key", o.Key, "found", ok)
			check(i, o, !ok)
		default:
			return nil, fmt.Errorf("step %d: unknown op %q", i, o.Op)
		}
	}
	if tree.Corrupt() {
		return nil, fmt.Errorf("%s: tree corrupt after replay", sc.Name)
	}

	res := &Result{
		Variant:  variant,
		Keys:     make([]int, 0, tree.Size()),
		Size:     tree.Size(),
		Height:   tree.Height(),
		Balanced: tree.Balanced(),
		Warnings: warnings,
	}
	for k := range tree.Keys() {
		res.Keys = append(res.Keys, k)
	}
	tree.LevelOrder(func(k, depth int) bool {
		if depth == len(res.Levels) {
			res.Levels = append(res.Levels, nil)
		}
		res.Levels[depth] = append(res.Levels[depth], k)
		return true
	})
	return res, nil
}
