package realtime

import (
	"encoding/json"
	"fmt"
)

const (
	TableProjects = "projects"
	TableRequests = "project_requests"
	TablePhases   = "project_phases"
	TablePhotos   = "project_photos"
	TableCosts    = "project_costs"

	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
)

// allowedFilters lists the columns a subscription may filter on per table.
var allowedFilters = map[string][]string{
	TableProjects: {"client_id", "pro_id", "id"},
	TableRequests: {"pro_id", "client_id"},
	TablePhases:   {"project_id"},
	TablePhotos:   {"project_id"},
	TableCosts:    {"project_id"},
}

// Event is a row-level delta. Record carries the row after the change so
// clients patch their list by id instead of re-fetching it.
type Event struct {
	Table  string          `json:"table"`
	Op     string          `json:"op"`
	ID     string          `json:"id"`
	Record json.RawMessage `json:"record"`
}

func NewEvent(table, op, id string, record any) (Event, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s record: %w", table, err)
	}
	return Event{Table: table, Op: op, ID: id, Record: raw}, nil
}

// Filter selects the events of one table where column = value.
type Filter struct {
	Table  string
	Column string
	Value  string
}

func (f Filter) Validate() error {
	cols, ok := allowedFilters[f.Table]
	if !ok {
		return fmt.Errorf("table %q cannot be subscribed to", f.Table)
	}
	if f.Value == "" {
		return fmt.Errorf("filter value is required")
	}
	for _, c := range cols {
		if c == f.Column {
			return nil
		}
	}
	return fmt.Errorf("column %q is not filterable on %s", f.Column, f.Table)
}

// fields decodes the record once so several filters can be matched.
func (e Event) fields() map[string]any {
	var m map[string]any
	if err := json.Unmarshal(e.Record, &m); err != nil {
		return nil
	}
	return m
}

func (f Filter) matches(table string, fields map[string]any) bool {
	if f.Table != table {
		return false
	}
	v, ok := fields[f.Column]
	if !ok || v == nil {
		return false
	}
	return fmt.Sprint(v) == f.Value
}
