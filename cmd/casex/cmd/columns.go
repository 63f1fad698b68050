package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
	mdwlog "github.com/msto63/mdwx/foundation/core/log"
	"github.com/msto63/mdwx/foundation/data/tablex"
	mdwfilex "github.com/msto63/mdwx/foundation/utils/filex"
	mdwstringx "github.com/msto63/mdwx/foundation/utils/stringx"
)

// columnRow is one line of the `columns` table
type columnRow struct {
	Column    string `display:"Column"`
	Type      string `display:"Type"`
	Converted string `display:"Identifier"`
}

func newColumnsCmd(a *app) *cobra.Command {
	var (
		dbPath string
		table  string
		query  string
		to     string
		plain  bool
	)

	columnsCmd := &cobra.Command{
		Use:   "columns",
		Short: "Converts the column names of a SQLite query result",
		Long: `Runs a query against a SQLite database and converts every result
column name, e.g. to derive Go field names from a table:

  casex columns --db app.db --table user_accounts --to pascal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			convention, err := mdwstringx.ParseConvention(mdwstringx.FirstNonBlank(to, a.config.GetString(keyConvention)))
			if err != nil {
				return err
			}

			if mdwstringx.IsBlank(dbPath) {
				return usageError(cmd, "db", errors.New(`required flag "db" not set`))
			}
			switch {
			case mdwstringx.IsNotBlank(table) && mdwstringx.IsNotBlank(query):
				return usageError(cmd, "table", errors.New("--table and --query are mutually exclusive"))
			case mdwstringx.IsNotBlank(table):
				query = fmt.Sprintf("SELECT * FROM %s LIMIT 0", quoteIdentifier(table))
			case mdwstringx.IsBlank(query):
				return usageError(cmd, "query", errors.New("either --table or --query is required"))
			}
			if !mdwfilex.IsFile(dbPath) {
				return mdwerrors.NotFound(mdwerrors.ModuleCasex, "columns", dbPath)
			}

			db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
			if err != nil {
				return mdwerrors.Database(mdwerrors.ModuleCasex, "columns", err)
			}
			defer db.Close()

			a.logger.Debug("querying columns", mdwlog.Fields{"db": dbPath, "query": query})

			result, err := tablex.Query(cmd.Context(), db, query)
			if err != nil {
				a.logger.LogError(err)
				return err
			}

			rows := make([]columnRow, 0, len(result.Columns))
			for _, column := range result.Columns {
				converted, err := mdwstringx.Convert(convention, column.Name)
				if errors.Is(err, mdwstringx.ErrBlankText) {
					a.logger.LogError(err)
					converted = "<" + mdwstringx.ErrBlankText.Error() + ">"
				} else if err != nil {
					return err
				}
				rows = append(rows, columnRow{
					Column:    column.Name,
					Type:      column.DatabaseType,
					Converted: converted,
				})
			}

			return renderRows(cmd.OutOrStdout(), rows, a.plainOutput(plain))
		},
	}

	columnsCmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database (required)")
	columnsCmd.Flags().StringVar(&table, "table", "", "table whose columns are converted")
	columnsCmd.Flags().StringVar(&query, "query", "", "query whose result columns are converted")
	columnsCmd.Flags().StringVarP(&to, "to", "t", "", "target convention (default casex.convention)")
	columnsCmd.Flags().BoolVar(&plain, "plain", false, "plain text output without styling")

	return columnsCmd
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
