// layoutdump inspects resolved keyboard layouts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"keylayout/internal/config"
	"keylayout/internal/logging"
	"keylayout/pkg/keys"
	"keylayout/pkg/layout"
)

var (
	configPath = flag.String("config", "", "path to config file")
	simulated  = flag.Bool("simulated", false, "use the built-in simulated US layout instead of the OS")
	numlock    = flag.Bool("numlock", true, "NumLock state for key resolution")
	pretty     = flag.Bool("pretty", false, "indent JSON output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()
	logging.SetDefault(logger.WithComponent("layoutdump"))

	cache := newCache(cfg)

	switch cmd := flag.Arg(0); cmd {
	case "info":
		cmdInfo(cache)
	case "dump":
		cmdDump(cache, cfg)
	case "key":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: layoutdump key <code> [modifiers]")
			os.Exit(1)
		}
		mods := ""
		if flag.NArg() >= 3 {
			mods = flag.Arg(2)
		}
		cmdKey(cache, flag.Arg(1), mods)
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `layoutdump - Inspect resolved keyboard layouts

Usage: layoutdump [options] <command> [args]

Commands:
  info                     Show the active layout id and properties
  dump                     Dump the resolved key tables
  key <code> [modifiers]   Resolve one key position, e.g. "KeyA shift+capslock"
  help                     Show this help message

Options:
  -config <path>  Path to config file
  -simulated      Use the built-in simulated US layout
  -numlock        NumLock state for key resolution (default true)
  -pretty         Indent JSON output`)
}

func newCache(cfg *config.Config) *layout.Cache {
	if *simulated || cfg.Simulate.Enabled {
		sim := layout.NewSimulated(layout.USQwerty())
		sim.SetToggled(layout.VK_NUMLOCK, cfg.Simulate.NumLock)
		return layout.NewCacheWith(sim)
	}
	return layout.NewCache()
}

func cmdInfo(cache *layout.Cache) {
	id, l := cache.GetCurrentLayout()

	out := struct {
		LayoutID     string `json:"layout_id"`
		AltGraph     bool   `json:"alt_graph"`
		Combinations int    `json:"combinations"`
		NumLockOn    int    `json:"numlock_on_keys"`
		NumLockOff   int    `json:"numlock_off_keys"`
	}{
		LayoutID:     fmt.Sprintf("0x%08X", uint64(id)),
		AltGraph:     l.HasAltGraph(),
		Combinations: len(l.Combinations()),
		NumLockOn:    len(l.NumLockOnKeys()),
		NumLockOff:   len(l.NumLockOffKeys()),
	}
	writeJSON(out)
}

func cmdDump(cache *layout.Cache, cfg *config.Config) {
	_, l := cache.GetCurrentLayout()

	combos := l.Combinations()
	if len(cfg.Dump.Combinations) > 0 {
		combos = combos[:0]
		for _, c := range cfg.Dump.Combinations {
			combos = append(combos, layout.ModBits(c))
		}
	}

	type tableDump struct {
		Modifiers string            `json:"modifiers"`
		Keys      map[string]string `json:"keys"`
	}
	out := struct {
		LayoutID string            `json:"layout_id"`
		AltGraph bool              `json:"alt_graph"`
		Tables   []tableDump       `json:"tables"`
		NumLock  map[string]string `json:"numlock_on"`
	}{
		LayoutID: fmt.Sprintf("0x%08X", uint64(l.ID())),
		AltGraph: l.HasAltGraph(),
		NumLock:  make(map[string]string),
	}

	for _, combo := range combos {
		table := l.KeyTable(combo)
		if table == nil {
			continue
		}
		td := tableDump{Modifiers: combo.String(), Keys: make(map[string]string, len(table))}
		for code, k := range table {
			if k.IsUnidentified() {
				continue
			}
			td.Keys[code.String()] = k.String()
		}
		out.Tables = append(out.Tables, td)
	}
	sort.Slice(out.Tables, func(i, j int) bool {
		return out.Tables[i].Modifiers < out.Tables[j].Modifiers
	})

	for vk, k := range l.NumLockOnKeys() {
		out.NumLock[fmt.Sprintf("0x%02X", vk)] = k.String()
	}

	writeJSON(out)
}

func cmdKey(cache *layout.Cache, codeName, modsSpec string) {
	code, err := keys.ParseKeyCode(codeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mods, err := layout.ParseModBits(modsSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, l := cache.GetCurrentLayout()
	// Resolve through the character tables; the zero virtual key skips
	// the non-character and numpad mappings.
	k := l.GetKey(mods, *numlock, 0, 0, code)

	out := struct {
		Code      string `json:"code"`
		Modifiers string `json:"modifiers"`
		Key       string `json:"key"`
		Kind      string `json:"kind"`
	}{
		Code:      code.String(),
		Modifiers: mods.String(),
		Key:       k.String(),
		Kind:      kindName(k.Kind()),
	}
	writeJSON(out)
}

func kindName(k keys.Kind) string {
	switch k {
	case keys.KindCharacter:
		return "character"
	case keys.KindDead:
		return "dead"
	case keys.KindNamed:
		return "named"
	default:
		return "unidentified"
	}
}

func writeJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
}
