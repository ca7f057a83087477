// Package labels provides the data-driven column-label rule table used to
// locate the timestamp, temperature, humidity and battery columns in a
// logger export header. Different device families and export tools emit
// different column captions, so detection is a best-effort classifier over
// free-text labels: an ordered list of (role, substrings) rules, first
// matching rule per role wins. New label variants can be added through a
// YAML rules file without touching control flow.
package labels

import "strings"

// Role identifies which physical quantity a column holds.
type Role string

// Column roles.
const (
	RoleTimestamp   Role = "timestamp"
	RoleTemperature Role = "temperature"
	RoleHumidity    Role = "humidity"
	RoleBattery     Role = "battery"
)

// knownRoles is the set of roles accepted in rules files.
var knownRoles = map[Role]bool{
	RoleTimestamp:   true,
	RoleTemperature: true,
	RoleHumidity:    true,
	RoleBattery:     true,
}

// Rule binds a role to the header substrings that identify it.
// Matching is case-sensitive. Several rules may share a role: they form
// priority tiers, and the first rule that matches any column binds the role.
type Rule struct {
	// Role is the column role this rule resolves.
	Role Role `yaml:"role"`

	// Contains lists the label substrings that identify the role. A column
	// matches when its caption contains any of them.
	Contains []string `yaml:"contains"`
}

// RuleSet is an ordered list of rules, evaluated top to bottom.
type RuleSet struct {
	// Version is the rules file format version. Currently only version 1
	// is supported.
	Version int `yaml:"version"`

	// Rules is the ordered rule list.
	Rules []Rule `yaml:"rules"`
}

// Default returns the built-in rule set covering the known device families
// and export tools. The two temperature tiers exist because some loggers
// emit both a raw and a high-resolution temperature channel on the same
// row; the high-resolution one is preferred when present.
func Default() *RuleSet {
	return &RuleSet{
		Version: 1,
		Rules: []Rule{
			{Role: RoleTimestamp, Contains: []string{"Date Time"}},
			{Role: RoleTemperature, Contains: []string{"High Res. Temp.", "High-Res Temp"}},
			{Role: RoleTemperature, Contains: []string{"Temp,", "Temp.", "Temperature"}},
			{Role: RoleHumidity, Contains: []string{"RH,"}},
			{Role: RoleBattery, Contains: []string{"Batt, V"}},
		},
	}
}

// Columns holds the resolved column index per role; -1 means unresolved.
type Columns struct {
	Timestamp   int
	Temperature int
	Humidity    int
	Battery     int
}

// noColumns is the all-unresolved starting point.
func noColumns() Columns {
	return Columns{Timestamp: -1, Temperature: -1, Humidity: -1, Battery: -1}
}

// Index returns the resolved index for a role, or -1.
func (c Columns) Index(r Role) int {
	switch r {
	case RoleTimestamp:
		return c.Timestamp
	case RoleTemperature:
		return c.Temperature
	case RoleHumidity:
		return c.Humidity
	case RoleBattery:
		return c.Battery
	}
	return -1
}

// Resolved reports whether the role was bound to a column.
func (c Columns) Resolved(r Role) bool { return c.Index(r) >= 0 }

func (c *Columns) set(r Role, i int) {
	switch r {
	case RoleTimestamp:
		c.Timestamp = i
	case RoleTemperature:
		c.Temperature = i
	case RoleHumidity:
		c.Humidity = i
	case RoleBattery:
		c.Battery = i
	}
}

// Resolve classifies a tokenized header line. Rules are tried in order;
// the first rule whose substrings match a column binds its role to the
// first matching column, and later rules for the same role are skipped.
// Roles with no match stay at -1, which is not an error here: only the
// caller knows which roles it requires.
func (rs *RuleSet) Resolve(fields []string) Columns {
	cols := noColumns()
	for _, rule := range rs.Rules {
		if cols.Resolved(rule.Role) {
			continue
		}
		for i, field := range fields {
			if containsAny(field, rule.Contains) {
				cols.set(rule.Role, i)
				break
			}
		}
	}
	return cols
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
