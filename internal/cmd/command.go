package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// NewRootCommand builds the `deepmatch` command. Flags default to the values
// in `s` so that they override the environment.
func NewRootCommand(s Settings, out io.Writer) *cobra.Command {
	cmds := &cobra.Command{
		Use:           "deepmatch",
		Short:         "Structural deep matching of fixture documents.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmds.PersistentFlags()
	flags.StringVar(&s.WorkingDir, "dir", s.WorkingDir, "directory config and fixture paths are relative to")
	flags.StringVar(&s.ConfigFile, "config", s.ConfigFile, "config file")
	addKlogFlags(flags)

	cmds.AddCommand(newCheckCommand(&s, out), newGenCommand(&s))

	return cmds
}

func newCheckCommand(s *Settings, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Match actual values against expected fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Check(cmd.Context(), *s, out)
		},
	}

	cmd.Flags().StringVar(&s.DatabaseURL, "database-url", s.DatabaseURL, "postgres url for cases with an actual query")
	cmd.Flags().DurationVar(&s.QueryTimeout, "query-timeout", s.QueryTimeout, "timeout of each actual query")
	cmd.Flags().BoolVar(&s.Diff, "diff", s.Diff, "show a diff for every equality mismatch")

	return cmd
}

func newGenCommand(s *Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Generate Go variables from expected fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Generate(*s)
		},
	}
}

func addKlogFlags(fs *pflag.FlagSet) {
	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	klog.InitFlags(flagSet)
	fs.AddGoFlagSet(flagSet)
}
