package hobo

import (
	"encoding/csv"
	"regexp"
	"strings"

	"github.com/hobolog/hobo-go/pkg/hobo/labels"
	"github.com/hobolog/hobo-go/pkg/hobo/sample"
)

// scanState is the header scanner's state. Export preambles have no fixed
// length, so the header row is found by scanning line by line rather than
// reading a fixed offset.
type scanState int

const (
	stateScanning scanState = iota
	stateHeaderFound
	stateExhausted
)

var (
	// tzPattern deliberately tolerates a non-zero minutes field even though
	// Offset construction requires ":00"; a GMT±HH:30 annotation therefore
	// matches here and fails construction with *sample.FormatError.
	tzPattern = regexp.MustCompile(`GMT[-+]\d\d:\d\d`)

	// serialPatterns are the serial-number label variants; first match
	// wins and later lines are not re-checked.
	serialPatterns = []*regexp.Regexp{
		regexp.MustCompile(`LGR S/N: (\d+)`),
		regexp.MustCompile(`Serial Number:(\d+)`),
	}
)

// headerScanner consumes preamble lines until a line resolves both
// mandatory columns. Metadata (title, serial number, timezone) is collected
// incrementally along the way and frozen at the transition.
type headerScanner struct {
	rules *labels.RuleSet
	state scanState

	meta       Metadata
	cols       labels.Columns
	headerLine string

	titleSet       bool
	sawTimestamp   bool
	sawTemperature bool
}

func newHeaderScanner(rules *labels.RuleSet) *headerScanner {
	return &headerScanner{rules: rules}
}

// observe consumes one line. It returns found=true on the transition to
// the header-found state, after which further calls are no-ops. The only
// error it can produce is a malformed timezone annotation.
func (s *headerScanner) observe(line string) (found bool, err error) {
	if s.state != stateScanning {
		return s.state == stateHeaderFound, nil
	}
	line = strings.TrimRight(line, "\r\n")

	// The first line is the title, whatever it contains.
	if !s.titleSet {
		s.meta.Title = line
		s.titleSet = true
	}

	if s.meta.SerialNumber == "" {
		for _, re := range serialPatterns {
			if m := re.FindStringSubmatch(line); m != nil {
				s.meta.SerialNumber = m[1]
				break
			}
		}
	}

	if s.meta.Timezone == nil {
		if m := tzPattern.FindString(line); m != "" {
			tz, err := sample.Parse(m)
			if err != nil {
				return false, err
			}
			s.meta.Timezone = &tz
		}
	}

	cols := s.rules.Resolve(tokenizeLine(line))
	if cols.Resolved(labels.RoleTimestamp) {
		s.sawTimestamp = true
	}
	if cols.Resolved(labels.RoleTemperature) {
		s.sawTemperature = true
	}
	if cols.Resolved(labels.RoleTimestamp) && cols.Resolved(labels.RoleTemperature) {
		s.cols = cols
		s.headerLine = line
		s.state = stateHeaderFound
		return true, nil
	}
	return false, nil
}

// exhausted marks end of input before the header was found and returns the
// MissingColumnError naming the mandatory column that never resolved.
func (s *headerScanner) exhausted() error {
	s.state = stateExhausted
	if !s.sawTimestamp {
		return &MissingColumnError{Role: labels.RoleTimestamp}
	}
	return &MissingColumnError{Role: labels.RoleTemperature}
}

// tokenizeLine splits a preamble line on commas. Tokenization is always
// lenient here: preamble lines are free-form and a stray quote in plot
// metadata must not prevent locating the header row.
func tokenizeLine(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		return strings.Split(line, ",")
	}
	return fields
}
