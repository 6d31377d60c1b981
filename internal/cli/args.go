package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/borkshop/quadrant/internal/input"
)

// positionalNegatives rewrites args so that negative numbers reach commands
// as positional arguments rather than being parsed as shorthand flags. The
// subcommand path, flags, and flag values are moved ahead of a "--"
// terminator; the remaining tokens follow it in their original order. Args
// without a negative number, or that already carry a terminator, are returned
// unchanged.
func positionalNegatives(root *cobra.Command, args []string) []string {
	hasNegative := false
	for _, arg := range args {
		if arg == "--" {
			return args
		}
		if isNegativeNumber(arg) {
			hasNegative = true
		}
	}
	if !hasNegative {
		return args
	}

	cmd, _, err := root.Find(args)
	if err != nil {
		return args
	}

	path := strings.Fields(cmd.CommandPath())[1:]

	var head, rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" || isNegativeNumber(arg) {
			if len(path) > 0 && arg == path[0] {
				head = append(head, arg)
				path = path[1:]
				continue
			}
			rest = append(rest, arg)
			continue
		}
		head = append(head, arg)
		if takesValue(cmd, arg) && i+1 < len(args) {
			i++
			head = append(head, args[i])
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, head...)
	out = append(out, "--")
	return append(out, rest...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := input.ParseCoord(arg)
	return err == nil
}

// takesValue reports whether a flag token consumes the following argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = lookup(cmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) })
	} else {
		// only the last of a run of shorthands may take a value, and only if
		// nothing follows it in the same token
		short := arg[1:]
		if len(short) != 1 {
			return false
		}
		f = lookup(cmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(short) })
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookup(cmd *cobra.Command, get func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := get(c.LocalFlags()); f != nil {
			return f
		}
		if f := get(c.PersistentFlags()); f != nil {
			return f
		}
	}
	return nil
}
