// Package feed contains the two polling clients that keep the live state:
// the Socrata incident feed (5-minute cadence) and the Real-Time 911
// dispatch page (60-second cadence). Each client owns its snapshot; only
// its own poll completion writes to it. Overlapping manual and interval
// polls both complete and the last writer wins; staleness of a few
// seconds is acceptable in this domain.
package feed
