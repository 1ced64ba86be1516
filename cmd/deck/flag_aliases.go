package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addDescriptionFlagAliases lets --desc stand in for --description without
// registering a second flag.
func addDescriptionFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		aliasFlag(cmd.Flags(), "desc", "description")
	}
}

func aliasFlag(flags *pflag.FlagSet, alias, canonical string) {
	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == alias {
			name = canonical
		}
		return normalize(f, name)
	})
}
