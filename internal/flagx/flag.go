// Package flagx lets several components parse their own flags out of one
// shared argument list without tripping over each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// flagName strips leading dashes and any "=value" suffix: "--config=x" -> "config".
func flagName(arg string) string {
	name := strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name
}

func isFlag(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-") && arg != "--"
}

func nameSet(flags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		set[flagName(f)] = struct{}{}
	}
	return set
}

type argKind int

const (
	kindOther argKind = iota
	kindKnown
	kindLiteral
)

// walk classifies each argument: a known flag (or its separate value),
// a literal after the "--" terminator, or anything else.
//
// Supported forms for known flags, with one or two dashes:
//
//	-c conf.json
//	--config=conf.json
//
// A value is only consumed when the next argument does not look like a flag.
func walk(args []string, known map[string]struct{}, visit func(arg string, kind argKind)) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			for _, rest := range args[i+1:] {
				visit(rest, kindLiteral)
			}
			return
		}

		if _, ok := known[flagName(arg)]; !ok || !isFlag(arg) {
			visit(arg, kindOther)
			continue
		}

		visit(arg, kindKnown)
		if !strings.Contains(arg, "=") && i+1 < len(args) && !isFlag(args[i+1]) && args[i+1] != "--" {
			visit(args[i+1], kindKnown)
			i++
		}
	}
}

// FilterArgs returns only the allowed flags (and their values) from args,
// preserving order. allowedFlags may be written as "c", "-c" or "--c";
// both dash styles match in args.
func FilterArgs(args []string, allowedFlags []string) []string {
	filtered := make([]string, 0, len(args))
	walk(args, nameSet(allowedFlags), func(arg string, kind argKind) {
		if kind == kindKnown {
			filtered = append(filtered, arg)
		}
	})
	return filtered
}

// Positional returns the non-flag words left once known flags and their
// values are removed. Unknown flags are dropped too, except after "--".
func Positional(args []string, knownFlags []string) []string {
	rest := make([]string, 0, len(args))
	walk(args, nameSet(knownFlags), func(arg string, kind argKind) {
		switch {
		case kind == kindLiteral:
			rest = append(rest, arg)
		case kind == kindOther && !isFlag(arg):
			rest = append(rest, arg)
		}
	})
	return rest
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// Other arguments are ignored. Returns "" when neither is present.
func JsonConfigFlags(args []string) string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"c", "config"}))

	return config
}
