package labels

import "fmt"

// ValidationError represents a schema-level validation error: the rules
// file as a whole violates a structural requirement (unsupported version,
// no rules, too many rules).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// RuleError represents an error in an individual rule (unknown role,
// empty substring list, oversized substring).
type RuleError struct {
	Index   int    // 0-based index of the rule in the file
	Role    Role   // rule role (may be empty if the role field is missing)
	Field   string
	Message string
}

func (e *RuleError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("rule %q: %s: %s", e.Role, e.Field, e.Message)
	}
	return fmt.Sprintf("rule[%d]: %s: %s", e.Index, e.Field, e.Message)
}
