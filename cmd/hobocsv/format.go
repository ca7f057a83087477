package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hobolog/hobo-go/pkg/hobo"
)

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// OutputSample writes a sample in the specified format to the writer.
func OutputSample(format string, s hobo.Sample, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(s, out)
	case "pretty":
		return OutputPretty(s, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes a sample as JSON Lines format.
func OutputJSON(s hobo.Sample, out io.Writer) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes a sample in human-readable format.
func OutputPretty(s hobo.Sample, out io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] temp=%g", s.Timestamp.Format("2006-01-02 15:04:05 MST"), s.Temperature)
	if s.Humidity != nil {
		fmt.Fprintf(&sb, " rh=%g", *s.Humidity)
	}
	if s.Battery != nil {
		fmt.Fprintf(&sb, " batt=%g", *s.Battery)
	}
	_, err := fmt.Fprintln(out, sb.String())
	return err
}
