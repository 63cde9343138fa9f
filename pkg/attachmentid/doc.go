// Package attachmentid provides the identifier used to reference attachments.
//
// An attachment is identified by the domain of the service that issued it and
// a token unique within that domain. The pair has a single canonical string
// form, which is what gets stored, compared and sent between systems.
//
// # Serialized Forms
//
//	example.com/doc123   domain "example.com", id "doc123"
//	legacyToken          domain "", id "legacyToken" (legacy)
//
// Legacy IDs predate the domain component. They are still decoded, and an ID
// with an empty domain is encoded back to the bare token. Neither component
// may contain "/", so every well-formed pair has exactly one encoding.
//
// # Usage Examples
//
//	id, err := attachmentid.New("example.com", "doc123")
//	if err != nil {
//	    return err
//	}
//	id.String() // "example.com/doc123"
//
//	parsed, err := attachmentid.Parse("example.com/doc123")
//	var malformed *attachmentid.MalformedError
//	if errors.As(err, &malformed) {
//	    log.Printf("bad input %q, expected %s", malformed.Input, malformed.Hint)
//	}
//
// # Ordering
//
// IDs sort by domain and then by local id, byte-wise. Compare, Sort and Dedupe
// use that order, and it agrees with Equal.
//
// # Integration
//
// ID implements encoding.TextMarshaler, json.Marshaler, sql.Scanner and
// driver.Valuer, and the package exports ozzo-validation rules
// (IsAttachmentID, NotLegacy, InDomains, IsDomain).
package attachmentid
