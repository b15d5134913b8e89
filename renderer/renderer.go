// Package renderer formats reviews and salary reports as markdown.
// It only reads the report structs, it never talks to the broker.
package renderer

import (
	"os"
	"time"
)

// Now is the current time used in reports.
// it has to be overridable so that tests can pin it.
func Now() time.Time {
	if os.Getenv("KUPON_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("KUPON_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}
