// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"strings"
)

type boolFlag interface{ IsBoolFlag() bool }

// BoolFlags returns names of flags that take no value (--pretty, -v, ...).
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(boolFlag); ok && b.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals lets flags appear before, between, or after the
// <input> <output> paths. Flags (with their value unless boolean) are
// returned for fs.Parse; paths keep their order. A lone "-" is an ordinary
// file name here, and everything after "--" is a path, so a file called
// "-x" is passed as "-- -x".
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, paths []string) {
	isBool := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(paths, argv[i+1:]...)
		case len(arg) < 2 || arg[0] != '-':
			paths = append(paths, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !isBool[strings.TrimLeft(arg, "-")] && i+1 < len(argv) {
				i++
				flagArgs = append(flagArgs, argv[i])
			}
		}
	}
	return flagArgs, paths
}
