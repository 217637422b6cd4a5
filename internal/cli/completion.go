package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slicetree/pkg/floorplan"
	"github.com/matzehuels/slicetree/pkg/plan"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand prints a completion script for one of the supported
// shells. Plan arguments complete to .toml files and swap paths complete to
// the internal nodes of the plan given first.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Print a shell completion script (" + strings.Join(shells, ", ") + ")",
		Example: `  source <(slicetree completion bash)
  slicetree completion zsh > "${fpath[1]}/_slicetree"
  slicetree completion fish | source`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return root.GenBashCompletionV2(out, true)
		},
	}
}

// completePlanFile completes the first argument to plan files.
func completePlanFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeSwapPaths completes node paths after the plan argument.
func completeSwapPaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return completePlanFile(cmd, args, toComplete)
	}
	paths, err := splitPaths(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for _, p := range paths {
		if strings.HasPrefix(p, toComplete) {
			out = append(out, p)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// splitPaths lists the paths of the internal nodes of the plan at path, in
// pre-order, with the root spelled "root".
func splitPaths(path string) ([]string, error) {
	pl, err := plan.Load(path)
	if err != nil {
		return nil, err
	}
	tree, err := pl.Build()
	if err != nil {
		return nil, err
	}
	var out []string
	err = floorplan.Walk(tree.Root, func(n floorplan.Node, p string) error {
		if n.Kind() != floorplan.KindSplit {
			return nil
		}
		if p == "" {
			p = "root"
		}
		out = append(out, p)
		return nil
	})
	return out, err
}
