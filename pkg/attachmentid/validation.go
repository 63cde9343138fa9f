package attachmentid

import (
	"fmt"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errNotAttachmentID = validation.NewError(
		"validation_is_attachment_id", "must be an attachment ID of the form "+ExpectedFormats)
	errLegacy = validation.NewError(
		"validation_attachment_id_legacy", "must include a domain")
	errDomainNotAllowed = validation.NewError(
		"validation_attachment_id_domain", "domain is not allowed")
	errZero = validation.NewError(
		"validation_attachment_id_required", "cannot be blank")
	errInvalidDomain = validation.NewError(
		"validation_attachment_id_invalid_domain", "must not contain "+Separator)
)

// IsAttachmentID validates that a string parses as an attachment ID.
// ID values always pass. Empty values are skipped; combine with
// validation.Required where needed.
var IsAttachmentID validation.Rule = isAttachmentIDRule{}

// NotLegacy validates that an attachment ID carries a domain.
var NotLegacy validation.Rule = notLegacyRule{}

// NotZero validates that an ID value is set.
var NotZero validation.Rule = notZeroRule{}

// IsDomain validates that a string can be used as a domain component.
var IsDomain validation.Rule = isDomainRule{}

type isAttachmentIDRule struct{}

func (isAttachmentIDRule) Validate(value interface{}) error {
	_, err := toID(value)
	return err
}

type notLegacyRule struct{}

func (notLegacyRule) Validate(value interface{}) error {
	id, err := toID(value)
	if err != nil || id.IsZero() {
		return err
	}
	if id.IsLegacy() {
		return errLegacy
	}
	return nil
}

type notZeroRule struct{}

func (notZeroRule) Validate(value interface{}) error {
	id, err := toID(value)
	if err != nil {
		return err
	}
	if id.IsZero() {
		return errZero
	}
	return nil
}

type isDomainRule struct{}

func (isDomainRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("cannot validate %T as an attachment ID domain", value)
	}
	if strings.Contains(s, Separator) {
		return errInvalidDomain
	}
	return nil
}

// InDomains returns a rule that validates that an attachment ID's domain is
// one of domains. Legacy IDs only pass if "" is listed.
func InDomains(domains ...string) validation.Rule {
	return inDomainsRule{domains: domains}
}

type inDomainsRule struct {
	domains []string
}

func (r inDomainsRule) Validate(value interface{}) error {
	id, err := toID(value)
	if err != nil || id.IsZero() {
		return err
	}
	if !slices.Contains(r.domains, id.Domain()) {
		return errDomainNotAllowed.SetParams(map[string]interface{}{
			"domain": id.Domain(),
		})
	}
	return nil
}

// toID converts a validated value to an ID. Empty values yield the zero ID.
func toID(value interface{}) (ID, error) {
	if v, ok := value.(ID); ok {
		return v, nil
	}
	value, isNil := validation.Indirect(value)
	if isNil || value == nil {
		return ID{}, nil
	}

	switch v := value.(type) {
	case ID:
		return v, nil
	case string:
		if v == "" {
			return ID{}, nil
		}
		id, err := Parse(v)
		if err != nil {
			return ID{}, errNotAttachmentID
		}
		return id, nil
	default:
		return ID{}, fmt.Errorf("cannot validate %T as an attachment ID", value)
	}
}
