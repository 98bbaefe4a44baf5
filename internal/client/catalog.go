package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

type CatalogInfo struct {
	Name        string `json:"name"`
	Comment     string `json:"comment,omitempty"`
	Owner       string `json:"owner,omitempty"`
	CatalogType string `json:"catalog_type,omitempty"`
}

type SchemaInfo struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Comment  string `json:"comment,omitempty"`
	Owner    string `json:"owner,omitempty"`
}

type ColumnInfo struct {
	Name     string `json:"name"`
	TypeText string `json:"type_text"`
	TypeName string `json:"type_name,omitempty"`
	Nullable *bool  `json:"nullable,omitempty"`
	Comment  string `json:"comment,omitempty"`
	Position int    `json:"position"`
}

// Nullability defaults to true when the API omits the field.
func (c ColumnInfo) IsNullable() bool {
	return c.Nullable == nil || *c.Nullable
}

type TableInfo struct {
	Name             string       `json:"name"`
	FullName         string       `json:"full_name"`
	CatalogName      string       `json:"catalog_name"`
	SchemaName       string       `json:"schema_name"`
	TableType        string       `json:"table_type,omitempty"`
	DataSourceFormat string       `json:"data_source_format,omitempty"`
	Comment          string       `json:"comment,omitempty"`
	Owner            string       `json:"owner,omitempty"`
	Columns          []ColumnInfo `json:"columns,omitempty"`
}

type TableSummary struct {
	FullName  string `json:"full_name"`
	TableType string `json:"table_type,omitempty"`
}

// Catalogs lists all catalogs the principal can access.
func (c *Client) Catalogs(ctx context.Context) ([]CatalogInfo, error) {
	var result struct {
		Catalogs []CatalogInfo `json:"catalogs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/2.1/unity-catalog/catalogs", nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list catalogs")
	}
	return result.Catalogs, nil
}

// Schemas lists the schemas of a catalog.
func (c *Client) Schemas(ctx context.Context, catalog string) ([]SchemaInfo, error) {
	var result struct {
		Schemas []SchemaInfo `json:"schemas"`
	}
	query := url.Values{"catalog_name": {catalog}}
	if err := c.do(ctx, http.MethodGet, "/api/2.1/unity-catalog/schemas", query, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to list schemas in %q", catalog)
	}
	return result.Schemas, nil
}

// Tables lists the tables of a schema.
func (c *Client) Tables(ctx context.Context, catalog, schema string) ([]TableInfo, error) {
	var result struct {
		Tables []TableInfo `json:"tables"`
	}
	query := url.Values{
		"catalog_name": {catalog},
		"schema_name":  {schema},
	}
	if err := c.do(ctx, http.MethodGet, "/api/2.1/unity-catalog/tables", query, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to list tables in %q.%q", catalog, schema)
	}
	return result.Tables, nil
}

// Table returns full metadata, columns included, for
// catalog.schema.table.
func (c *Client) Table(ctx context.Context, fullName string) (TableInfo, error) {
	var result TableInfo
	if err := c.do(ctx, http.MethodGet, "/api/2.1/unity-catalog/tables/"+fullName, nil, nil, &result); err != nil {
		return TableInfo{}, errors.Wrapf(err, "failed to get table %q", fullName)
	}
	return result, nil
}

// SearchTables returns summaries of tables in catalog whose name matches
// pattern as a substring.
func (c *Client) SearchTables(ctx context.Context, catalog, pattern string) ([]TableSummary, error) {
	var result struct {
		Tables []TableSummary `json:"tables"`
	}
	query := url.Values{
		"catalog_name":       {catalog},
		"table_name_pattern": {"%" + pattern + "%"},
	}
	if err := c.do(ctx, http.MethodGet, "/api/2.1/unity-catalog/table-summaries", query, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to search tables in %q", catalog)
	}
	return result.Tables, nil
}
