/*
# Module: locate/safeid.go
Deterministic fallback document id derived from an email address.

## Linked Modules
(None - pure string transformation)

## Tags
identity, email, legacy

## Exports
SafeID

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "locate/safeid.go" ;
    code:description "Deterministic fallback document id derived from an email address" ;
    code:exports :SafeID ;
    code:tags "identity", "email", "legacy" .
<!-- End LinkedDoc RDF -->
*/
package locate

import "strings"

// SafeID derives the legacy document id convention from an email address.
// Older pipeline versions keyed user documents by this encoding instead of
// writing an email field. Substitutions apply in this exact order with no
// collision escaping.
func SafeID(email string) string {
	replaced := strings.ReplaceAll(email, "@", "_at_")
	replaced = strings.ReplaceAll(replaced, ".", "_dot_")
	replaced = strings.ReplaceAll(replaced, "+", "_plus_")
	replaced = strings.ReplaceAll(replaced, "-", "_dash_")
	return replaced
}
