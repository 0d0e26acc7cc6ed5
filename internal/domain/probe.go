package domain

import "time"

// ProbeResult is the outcome of one HTTP probe of a collected URL
type ProbeResult struct {
	URL           string        // Probed URL
	Method        string        // HEAD, or GET after a HEAD fallback
	Status        int           // HTTP status code (0 on transport error)
	ContentLength int64         // Content-Length header, or body size on GET fallback (-1 unknown)
	Err           string        // Transport error, if the request never completed
	Duration      time.Duration // Time taken for the final attempt
}

// Broken reports whether the probed URL should be treated as unreachable
func (p ProbeResult) Broken() bool {
	return p.Err != "" || p.Status >= 400
}
