/*
# Module: handlers/format.go
IST display formatting for epoch-millisecond timestamps.

## Linked Modules
(None - pure formatting)

## Tags
time, formatting, presentation

## Exports
FormatIST

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/format.go" ;
    code:description "IST display formatting for epoch-millisecond timestamps" ;
    code:exports :FormatIST ;
    code:tags "time", "formatting", "presentation" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import "time"

// ist is the fixed display timezone. The core operates entirely in epoch
// milliseconds; IST only exists at the rendering edge.
var ist = time.FixedZone("IST", 5*3600+30*60)

// FormatIST renders an epoch-millisecond timestamp for display. A zero
// value means "unknown/never" and renders as a placeholder, never as the
// epoch date.
func FormatIST(ms int64) string {
	if ms == 0 {
		return "—"
	}
	return time.UnixMilli(ms).In(ist).Format("02 Jan 2006, 03:04:05 PM") + " IST"
}
