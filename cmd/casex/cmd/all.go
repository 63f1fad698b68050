package cmd

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	mdwreflectx "github.com/msto63/mdwx/foundation/utils/reflectx"
	mdwslicex "github.com/msto63/mdwx/foundation/utils/slicex"
	mdwstringx "github.com/msto63/mdwx/foundation/utils/stringx"
	"github.com/msto63/mdwx/internal/tui"
)

// conventionRow is one line of the `all` table
type conventionRow struct {
	Convention string `display:"Convention"`
	Result     string `display:"Result"`
}

func newAllCmd(a *app) *cobra.Command {
	var plain bool

	allCmd := &cobra.Command{
		Use:   "all [text...]",
		Short: "Shows text in every convention",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			text := strings.Join(inputs, " ")

			rows := make([]conventionRow, 0, len(mdwstringx.Conventions()))
			for _, c := range mdwstringx.Conventions() {
				out, err := mdwstringx.Convert(c, text)
				if err != nil {
					a.logger.LogError(err)
					return err
				}
				rows = append(rows, conventionRow{Convention: c.String(), Result: out})
			}

			return renderRows(cmd.OutOrStdout(), rows, a.plainOutput(plain))
		},
	}

	allCmd.Flags().BoolVar(&plain, "plain", false, "plain text output without styling")
	return allCmd
}

// renderRows prints struct rows with headers taken from their display tags
func renderRows[T any](w io.Writer, rows []T, plain bool) error {
	attrs, err := mdwreflectx.FieldAttributes(reflect.TypeOf((*T)(nil)).Elem(), "display")
	if err != nil {
		return err
	}
	header := mdwslicex.Map(attrs, func(attr *mdwreflectx.Attribute) string { return attr.Name })

	cells := make([][]string, len(rows))
	for i, row := range rows {
		value := reflect.ValueOf(row)
		cells[i] = mdwslicex.Map(attrs, func(attr *mdwreflectx.Attribute) string {
			return fmt.Sprint(value.FieldByName(attr.Field).Interface())
		})
	}

	if plain {
		for _, row := range cells {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		return nil
	}

	fmt.Fprintln(w, tui.RenderTable(header, cells, -1))
	return nil
}
