package hop

import (
	"fmt"

	"github.com/arthur-debert/hop/internal/version"
	"github.com/arthur-debert/hop/pkg/config"
	"github.com/arthur-debert/hop/pkg/paths"
	"github.com/arthur-debert/hop/pkg/shell"
	"github.com/arthur-debert/hop/pkg/system"
	"github.com/arthur-debert/hop/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   MsgListShort,
		GroupID: "links",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := a.program(cmd, nil).ListLinks()
			if err != nil {
				return a.fail(MsgCtxList, err)
			}
			a.render.Names(pairs)
			return nil
		},
	}
}

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "table",
		Aliases: []string{"t"},
		Short:   MsgTableShort,
		GroupID: "links",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := a.program(cmd, nil).TabulateLinks()
			if err != nil {
				return a.fail(MsgCtxList, err)
			}
			if err := a.render.Table(pairs); err != nil {
				return a.fail(MsgCtxList, err)
			}
			return nil
		},
	}
}

func newJumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "jump NAME",
		Aliases:           []string{"j"},
		Short:             MsgJumpShort,
		GroupID:           "links",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.linkNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.program(cmd, nil).JumpTarget(types.NewLink(args[0]))
			if err != nil {
				return a.fail(fmt.Sprintf(MsgCtxJump, args[0]), err)
			}
			a.render.Target(target)
			return nil
		},
	}
}

func newMarkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "mark NAME PATH",
		Aliases: []string{"m"},
		Short:   MsgMarkShort,
		Long:    MsgMarkLong,
		Example: MsgMarkExample,
		GroupID: "links",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair := types.NewLinkPair(args[0], args[1])
			target, err := a.program(cmd, nil).MarkDir(pair)
			if err != nil {
				return a.fail(fmt.Sprintf(MsgCtxMark, pair), err)
			}
			a.render.Marked(pair.Link, target)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:               "delete NAME",
		Aliases:           []string{"d"},
		Short:             MsgDeleteShort,
		Long:              MsgDeleteLong,
		GroupID:           "links",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.linkNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			var stdio types.StdIO
			if yes {
				stdio = system.NewScriptedIO(cmd.OutOrStdout(), "y")
			}

			link := types.NewLink(args[0])
			status, err := a.program(cmd, stdio).DeleteLink(link)
			if err != nil {
				return a.fail(fmt.Sprintf(MsgCtxDelete, link), err)
			}
			a.render.Deleted(link, status)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}

// linkNamesCompletion completes existing link names
func (a *app) linkNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if a.cfg == nil {
		// Completion requests skip the persistent pre-run
		cfg, err := a.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		a.cfg = cfg
	}

	pairs, err := a.program(cmd, nil).ListLinks()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		names = append(names, pair.Link.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newSnippetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snippet",
		Short:   MsgSnippetShort,
		Long:    MsgSnippetLong,
		Example: MsgSnippetExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shellName, _ := cmd.Flags().GetString("shell")

			snippet, err := shell.Snippet(shell.Options{Shell: shellName})
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), snippet)
			return err
		},
	}

	cmd.Flags().StringP("shell", "s", shell.DefaultShell, MsgFlagShell)
	_ = cmd.RegisterFlagCompletionFunc("shell", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return shell.Supported(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newGenConfigCmd(a *app) *cobra.Command {
	var (
		effective bool
		write     bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch {
			case write:
				path := paths.ConfigFilePath()
				if a.flags.configFile != "" {
					path = paths.ExpandHome(a.flags.configFile)
				}
				if err := config.WriteDefaultConfig(path); err != nil {
					return a.fail(MsgCtxConfig, err)
				}
				_, err := fmt.Fprintf(out, MsgConfigWritten, path)
				return err
			case effective:
				content, err := config.EffectiveConfigContent(a.cfg)
				if err != nil {
					return a.fail(MsgCtxConfig, err)
				}
				_, err = fmt.Fprint(out, content)
				return err
			default:
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.MarkFlagsMutuallyExclusive("effective", "write")
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "HOP",
				Section: "1",
				Source:  "hop " + version.Version,
				Manual:  "hop manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}
