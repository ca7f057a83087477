package labels

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hobolog/hobo-go/internal/safefile"
)

const (
	// MaxRulesFileSize is the maximum allowed size for a rules file (1MB).
	MaxRulesFileSize = 1 * 1024 * 1024

	// MaxRuleCount is the maximum number of rules allowed in a rules file.
	MaxRuleCount = 256

	// MaxSubstringLength is the maximum length of a single label substring.
	MaxSubstringLength = 128

	// SupportedVersion is the currently supported rules file format version.
	SupportedVersion = 1
)

// sanitizePathError removes the path from os.PathError so error messages
// don't expose file system paths to users.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

// Load reads and parses a rules file from the given path.
// Returns an error if the file cannot be read, is too large, or fails
// validation. Non-regular files (FIFO, device, socket) are rejected.
//
// Example:
//
//	rs, err := labels.Load("rules.yaml")
//	if err != nil {
//	    log.Fatalf("failed to load rules file: %v", err)
//	}
func Load(path string) (*RuleSet, error) {
	f, info, err := safefile.OpenRegular(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rules file: %w", sanitizePathError(err))
	}
	defer f.Close()

	if info.Size() == 0 {
		return nil, errors.New("rules file is empty")
	}
	if info.Size() > MaxRulesFileSize {
		return nil, fmt.Errorf("rules file too large: %d bytes (max %d)", info.Size(), MaxRulesFileSize)
	}

	// Read MaxRulesFileSize+1 to detect the file growing past the limit
	// between Stat and Read.
	data, err := io.ReadAll(io.LimitReader(f, MaxRulesFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", sanitizePathError(err))
	}
	if len(data) > MaxRulesFileSize {
		return nil, fmt.Errorf("rules file too large: %d bytes (max %d)", len(data), MaxRulesFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses a rules file from a byte slice.
func LoadBytes(data []byte) (*RuleSet, error) {
	if len(data) == 0 {
		return nil, errors.New("rules file is empty")
	}
	if len(data) > MaxRulesFileSize {
		return nil, fmt.Errorf("rules file too large: %d bytes (max %d)", len(data), MaxRulesFileSize)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}

	return &rs, nil
}

// Validate performs schema-level validation on the rule set:
//   - supported version number
//   - at least one rule, at most MaxRuleCount
//   - known role and non-empty substring list per rule
//   - substring length limits
//
// Duplicate roles are deliberately allowed: rules sharing a role form
// priority tiers (see Resolve).
func (rs *RuleSet) Validate() error {
	if rs.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", rs.Version, SupportedVersion),
		}
	}

	if len(rs.Rules) == 0 {
		return &ValidationError{
			Field:   "rules",
			Message: "at least one rule is required",
		}
	}
	if len(rs.Rules) > MaxRuleCount {
		return &ValidationError{
			Field:   "rules",
			Message: fmt.Sprintf("too many rules (%d), maximum allowed is %d", len(rs.Rules), MaxRuleCount),
		}
	}

	for i, r := range rs.Rules {
		if r.Role == "" {
			return &RuleError{
				Index:   i,
				Field:   "role",
				Message: "role is required",
			}
		}
		if !knownRoles[r.Role] {
			return &RuleError{
				Index:   i,
				Role:    r.Role,
				Field:   "role",
				Message: fmt.Sprintf("unknown role (want one of %s, %s, %s, %s)", RoleTimestamp, RoleTemperature, RoleHumidity, RoleBattery),
			}
		}
		if len(r.Contains) == 0 {
			return &RuleError{
				Index:   i,
				Role:    r.Role,
				Field:   "contains",
				Message: "at least one label substring is required",
			}
		}
		for _, sub := range r.Contains {
			if sub == "" {
				return &RuleError{
					Index:   i,
					Role:    r.Role,
					Field:   "contains",
					Message: "label substring must not be empty",
				}
			}
			if len(sub) > MaxSubstringLength {
				return &RuleError{
					Index:   i,
					Role:    r.Role,
					Field:   "contains",
					Message: fmt.Sprintf("label substring too long: %d bytes (max %d)", len(sub), MaxSubstringLength),
				}
			}
		}
	}

	return nil
}
