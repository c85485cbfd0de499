package store

import (
	sq "github.com/Masterminds/squirrel"
)

const vaultItemsTable = "vault_items"

func buildGetItemQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(vaultItemsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertItemQuery(key, value string) (string, []any, error) {
	return sq.Insert(vaultItemsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildDeleteItemQuery(key string) (string, []any, error) {
	return sq.Delete(vaultItemsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildProbeQuery() (string, []any, error) {
	return sq.Select("COUNT(*)").
		From(vaultItemsTable).
		ToSql()
}
