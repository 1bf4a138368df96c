// Package migrations embeds the SQL migrations so the server and the migrate
// command ship the same schema.
package migrations

import (
	"embed"
	"fmt"
)

const (
	PostgresDir = "postgres"

	createTasksTable = PostgresDir + "/000001_create_tasks_table.up.sql"
)

//go:embed postgres/*.sql
var FS embed.FS

// TasksSchema returns the idempotent DDL for the tasks table.
func TasksSchema() (string, error) {
	ddl, err := FS.ReadFile(createTasksTable)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", createTasksTable, err)
	}

	return string(ddl), nil
}
