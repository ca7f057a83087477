// Package hobo reads CSV exports produced by environmental data-logger
// software into typed (timestamp, temperature, humidity, battery) samples.
//
// Export files start with a free-form preamble of variable length (plot
// title, serial number, timezone annotation) followed by a column-header
// row and comma-separated data rows. Which column holds which quantity
// varies by device family and export tool, so columns are located by
// substring heuristics over the header captions rather than by position.
//
// # Basic Usage
//
// To read a finished export:
//
//	r, err := hobo.Open("upper_cave.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	fmt.Println(r.Metadata().Title, r.Metadata().SerialNumber)
//
//	for s, err := range r.Samples() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(s.Timestamp, s.Temperature)
//	}
//
// Rows that are not sensor readings (event markers with an empty
// temperature cell, blank separator rows) are skipped silently; every
// other malformed row surfaces an error and stops iteration.
//
// To convert timestamps to a different fixed offset:
//
//	pacific, _ := sample.New(-8)
//	r, err := hobo.Open("export.csv", hobo.WithTimezone(pacific))
//
// # Following a live export
//
// Logger software appends to an export while a deployment is active.
// A Follower tails the file and delivers samples as they are written:
//
//	f, err := hobo.NewFollower("live.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	samples, errs, err := f.Follow(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    select {
//	    case s, ok := <-samples:
//	        if !ok {
//	            return
//	        }
//	        fmt.Println(s.Timestamp, s.Temperature)
//	    case err, ok := <-errs:
//	        if !ok {
//	            return
//	        }
//	        log.Printf("error: %v", err)
//	    }
//	}
//
// # Custom column labels
//
// Column detection rules are data-driven. To support a device family with
// new header captions, load a YAML rules file with the [labels] subpackage:
//
//	rs, err := labels.Load("rules.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := hobo.Open("export.csv", hobo.WithRules(rs))
package hobo
