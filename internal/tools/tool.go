// Package tools implements the deterministic calculation tools used by the
// hiring workflow: timeline estimation, salary benchmarking, and offer-letter
// generation. Tools never fail the pipeline: any internal error or panic is
// converted into an error-string result at this boundary.
package tools

import (
	"fmt"
	"log"
)

// Safe runs fn and converts any returned error or panic into a descriptive
// text result. This asymmetry with the agent boundary is deliberate: agent
// failures are explicit failed results, tool failures degrade to text inline.
func Safe(name string, fn func() (string, error)) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = handleError(name, fmt.Errorf("panic: %v", r))
		}
	}()

	out, err := fn()
	if err != nil {
		return handleError(name, err)
	}
	return out
}

func handleError(name string, err error) string {
	msg := fmt.Sprintf("Error in %s: %v", name, err)
	log.Print(msg)
	return msg
}
