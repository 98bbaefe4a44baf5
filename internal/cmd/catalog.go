package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/brickops/dbnb/internal/client"
)

func catalogCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "catalog",
		Short: "Browse Unity Catalog metadata.",
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogSchemasCmd())
	cmd.AddCommand(catalogTablesCmd())
	cmd.AddCommand(catalogTableCmd())
	cmd.AddCommand(catalogDDLCmd())
	cmd.AddCommand(catalogSearchCmd())

	return &cmd
}

func catalogListCmd() *cobra.Command {
	var asJSON bool

	cmd := cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accessible catalogs.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			catalogs, err := c.Catalogs(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, catalogs)
			}

			table := newTable(cmd)
			table.AddField(strings.ToUpper("Name"))
			table.AddField(strings.ToUpper("Type"))
			table.AddField(strings.ToUpper("Owner"))
			table.AddField(strings.ToUpper("Comment"))
			table.EndRow()

			for _, cat := range catalogs {
				table.AddField(cat.Name)
				table.AddField(cat.CatalogType)
				table.AddField(cat.Owner)
				table.AddField(cat.Comment)
				table.EndRow()
			}
			return errors.Wrap(table.Render(), "failed to render table")
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON.")

	return &cmd
}

func catalogSchemasCmd() *cobra.Command {
	var asJSON bool

	cmd := cobra.Command{
		Use:   "schemas <catalog>",
		Short: "List the schemas of a catalog.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			schemas, err := c.Schemas(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, schemas)
			}

			table := newTable(cmd)
			table.AddField(strings.ToUpper("Name"))
			table.AddField(strings.ToUpper("Full Name"))
			table.AddField(strings.ToUpper("Owner"))
			table.EndRow()

			for _, schema := range schemas {
				table.AddField(schema.Name)
				table.AddField(schema.FullName)
				table.AddField(schema.Owner)
				table.EndRow()
			}
			return errors.Wrap(table.Render(), "failed to render table")
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON.")

	return &cmd
}

func catalogTablesCmd() *cobra.Command {
	var asJSON bool

	cmd := cobra.Command{
		Use:   "tables <catalog> <schema>",
		Short: "List the tables of a schema.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			tables, err := c.Tables(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, tables)
			}

			table := newTable(cmd)
			table.AddField(strings.ToUpper("Name"))
			table.AddField(strings.ToUpper("Type"))
			table.AddField(strings.ToUpper("Format"))
			table.AddField(strings.ToUpper("Comment"))
			table.EndRow()

			for _, tbl := range tables {
				table.AddField(tbl.Name)
				table.AddField(tbl.TableType)
				table.AddField(tbl.DataSourceFormat)
				table.AddField(tbl.Comment)
				table.EndRow()
			}
			return errors.Wrap(table.Render(), "failed to render table")
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON.")

	return &cmd
}

func catalogTableCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "table <catalog.schema.table>",
		Short: "Get a table's full schema with columns.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			table, err := c.Table(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, table)
		},
	}
	return &cmd
}

func catalogDDLCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "ddl <catalog.schema.table>",
		Short: "Generate a CREATE TABLE statement for a table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			table, err := c.Table(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeString(cmd, renderDDL(table))
		},
	}
	return &cmd
}

func renderDDL(table client.TableInfo) string {
	colDefs := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		def := fmt.Sprintf("  %s %s", col.Name, col.TypeText)
		if !col.IsNullable() {
			def += " NOT NULL"
		}
		if col.Comment != "" {
			def += fmt.Sprintf(" COMMENT '%s'", col.Comment)
		}
		colDefs = append(colDefs, def)
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n)", table.FullName, strings.Join(colDefs, ",\n"))
	if table.Comment != "" {
		ddl += fmt.Sprintf("\nCOMMENT '%s'", table.Comment)
	}
	return ddl
}

func catalogSearchCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "search <catalog> <pattern>",
		Short: "Search tables by name pattern.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}

			tables, err := c.SearchTables(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd, tables)
		},
	}
	return &cmd
}
