package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
	mdwlog "github.com/msto63/mdwx/foundation/core/log"
	mdwfilex "github.com/msto63/mdwx/foundation/utils/filex"
	mdwslicex "github.com/msto63/mdwx/foundation/utils/slicex"
	mdwstringx "github.com/msto63/mdwx/foundation/utils/stringx"
)

var conventionAliases = map[mdwstringx.Convention][]string{
	mdwstringx.ConventionScreamingSnake: {"screaming", "constant"},
	mdwstringx.ConventionKebab:          {"dash"},
}

// newConventionCmds creates one subcommand per convention
func newConventionCmds(a *app) []*cobra.Command {
	return mdwslicex.Map(mdwstringx.Conventions(), func(c mdwstringx.Convention) *cobra.Command {
		return &cobra.Command{
			Use:     c.String() + " [text...]",
			Aliases: conventionAliases[c],
			Short:   fmt.Sprintf("Converts text to %s (%s)", c, c.Example()),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.convert(cmd, c, args)
			},
		}
	})
}

func newConvertCmd(a *app) *cobra.Command {
	var to string

	convertCmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Converts text to the configured or given convention",
		Long: `Converts text to the convention given with --to, or to casex.convention
from the configuration file (default camel).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			convention, err := mdwstringx.ParseConvention(mdwstringx.FirstNonBlank(to, a.config.GetString(keyConvention)))
			if err != nil {
				return err
			}
			return a.convert(cmd, convention, args)
		},
	}

	names := mdwslicex.Map(mdwstringx.Conventions(), mdwstringx.Convention.String)
	convertCmd.Flags().StringVarP(&to, "to", "t", "", "target convention: "+strings.Join(names, ", "))

	return convertCmd
}

func (a *app) convert(cmd *cobra.Command, convention mdwstringx.Convention, args []string) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	a.logger.Debug("converting", mdwlog.Fields{
		"convention": convention.String(),
		"inputs":     len(inputs),
	})

	for _, text := range inputs {
		out, err := mdwstringx.Convert(convention, text)
		if err != nil {
			a.logger.LogError(err)
			return err
		}
		if a.logger.IsLevelEnabled(mdwlog.LevelTrace) {
			a.logger.Trace("converted", mdwlog.Fields{
				"input":  text,
				"output": out,
				"words":  len(mdwstringx.Words(text)),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// readInputs returns the joined arguments, or the non-blank stdin lines
// when there are no arguments.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	lines, err := mdwfilex.ScanLines(cmd.InOrStdin())
	if err != nil {
		return nil, mdwerrors.InvalidOperation(mdwerrors.ModuleCasex, "readInputs", err)
	}
	if _, err := mdwslicex.RemoveWhere(&lines, mdwstringx.IsBlank); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleCasex, "readInputs", "text", mdwstringx.ErrBlankText)
	}
	return lines, nil
}
