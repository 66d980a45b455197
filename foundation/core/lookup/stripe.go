// File: stripe.go
// Title: Stripe Message Tables
// Description: Human-readable messages for Stripe verification error codes,
//              account requirements and disabled-account reasons. Unknown
//              codes map to a generic fallback; lookups never fail.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package lookup

import (
	"strings"

	"github.com/msto63/ztk/foundation/utils/mapx"
)

// Fallback messages for unknown codes
const (
	StripeErrorFallback       = "Oops, something went wrong :/"
	StripeRequirementFallback = "Please try again"
	StripeDisabledFallback    = "Your account is disabled. Please get in touch for more info."
)

var stripeErrorCodes = map[string]string{
	"invalid_address_city_state_postal_code":             "The combination of the city, state, and postal code in the provided address could not be validated.",
	"invalid_street_address":                             "The street name and/or number for the provided address could not be validated.",
	"invalid_value_other":                                "An invalid value was provided for the some field. This is a general error code.",
	"verification_document_address_mismatch":             "The address on the document did not match the address on the account. Upload a document with a matching address or update the address on the account.",
	"verification_document_address_missing":              "The address was missing on the document. Upload a document that includes the address.",
	"verification_document_corrupt":                      "The uploaded file for the document was invalid or corrupt. Please upload a new file of the document.",
	"verification_document_country_not_supported":        "Sorry The provided document is from an unsupported country :/",
	"verification_document_dob_mismatch":                 "The date of birth (DOB) on the document did not match the DOB on the account. Upload a document with a matching DOB or update the DOB on the account.",
	"verification_document_duplicate_type":               "The same type of document was used twice. Two unique types of documents are required for verification. Upload two different documents.",
	"verification_document_expired":                      "The document could not be used for verification because it has expired. If it’s an identity document, its expiration date must be after the date the document was submitted. If it’s an address document, the issue date must be within the last six months.",
	"verification_document_failed_copy":                  "The document could not be verified because it was detected as a copy (e.g., photo or scan). Upload the original document.",
	"verification_document_failed_greyscale":             "The document could not be used for verification because it was in greyscale. Upload a color copy of the document.",
	"verification_document_failed_other":                 "The document could not be verified for an unknown reason. Ensure that the document follows the guidelines for document uploads.",
	"verification_document_failed_test_mode":             "A test data helper was supplied to simulate verification failure. Refer to the documentation for test file tokens.",
	"verification_document_fraudulent":                   "The document was identified as altered or falsified.",
	"verification_document_id_number_mismatch":           "The ID number on the account could not be verified. Correct any errors in the ID number field or upload a document that includes the ID number.",
	"verification_document_id_number_missing":            "The ID number was missing on the document. Upload a document that includes the ID number.",
	"verification_document_incomplete":                   "The document was cropped or missing important information. Upload a complete scan of the document.",
	"verification_document_invalid":                      "The uploaded file was not one of the valid document types. Ensure that the document follows the guidelines for document uploads.",
	"verification_document_issue_or_expiry_date_missing": "The issue or expiry date is missing on the document. Upload a document that includes the issue and expiry dates.",
	"verification_document_manipulated":                  "The document was identified as altered or falsified.",
	"verification_document_missing_back":                 "The uploaded file was missing the back of the document. Upload a complete scan of the document.",
	"verification_document_missing_front":                "The uploaded file was missing the front of the document. Upload a complete scan of the document.",
	"verification_document_name_mismatch":                "The name on the document did not match the name on the account. Upload a document with a matching name or update the name on the account.",
	"verification_document_name_missing":                 "The name was missing on the document. Upload a document that includes name.",
	"verification_document_nationality_mismatch":         "The nationality on the document did not match the stated nationality. Update the stated nationality, or upload a document that matches it.",
	"verification_document_not_readable":                 "The document could not be read. Ensure that the document follows the guidelines for document uploads.",
	"verification_document_not_signed":                   "A valid signature is missing on the document. Upload a document that includes a valid signature.",
	"verification_document_not_uploaded":                 "No document was uploaded. Upload the document again.",
	"verification_document_photo_mismatch":               "The document was identified as altered or falsified.",
	"verification_document_too_large":                    "The uploaded file exceeded the 10 MB size limit. Resize the document and upload the new file.",
	"verification_document_type_not_supported":           "The provided document type was not accepted. Ensure that the document follows the guidelines for document uploads.",
	"verification_failed_address_match":                  "The address on the account could not be verified. Correct any errors in the address field or upload a document that includes the address.",
	"verification_failed_business_iec_number":            "The Importer Exporter Code (IEC) number could not be verified. Correct any errors in the IEC number field.",
	"verification_failed_document_match":                 "The document could not be verified. Upload a document that includes the name, ID number, and address fields.",
	"verification_failed_id_number_match":                "The ID number on the account could not be verified. Correct any errors in the ID number field or upload a document that includes the ID number.",
	"verification_failed_keyed_identity":                 "The keyed-in identity information could not be verified. Correct any errors or upload a document that matches the identity fields (e.g., name and date of birth) entered.",
	"verification_failed_keyed_match":                    "The keyed-in information on the account could not be verified. Correct any errors in the name, ID number, or address fields. You can also upload a document that includes those fields.",
	"verification_failed_name_match":                     "The name on the account could not be verified. Correct any errors in the name field or upload a document that includes the name.",
	"verification_failed_tax_id_match":                   "The tax ID on the account cannot be verified by the IRS. Either correct any possible errors in the name or tax ID, or upload a document that contains those fields.",
	"verification_failed_tax_id_not_issued":              "The tax ID on the account was not recognized by the IRS. Refer to the support article for newly-issued tax ID numbers.",
	"verification_failed_other":                          "Verification failed for an unknown reason. Correct any errors and resubmit the required fields.",
}

var stripeRequirements = map[string]string{
	"individual.verification.additional_document": "Some additional verification document might be required",
	"individual.verification.document":            "Some verification document might be required",
}

var stripeDisabledReasons = map[string]string{
	"application.deauthorized":          "You opted to delete your Stripe account.",
	"requirements.past_due":             "Your account is disabled because you do not meet Stripe requirements.",
	"requirements.pending_verification": "Your account is not yet enabled because it is being verified.",
	"rejected.fraud":                    "Your account has been permanently banned because of fraudulent activity.",
	"rejected.terms_of_service":         "Your account is not enabled beacause you have rejected Stripe terms of service (TOS).",
	"rejected.listed":                   "Your account is rejected. Please get in touch for more info.",
	"rejected.other":                    "Your account is rejected. Please get in touch for more info.",
	"listed":                            "Your account is disabled. Please get in touch for more info",
	"under_review":                      "Your account is temporarily disabled and it under review. Sorry for the inconvenience.",
	"other":                             "Your account is disabled. Please get in touch for more info.",
}

// StripeErrorMessage returns the message for a Stripe verification error
// code, or StripeErrorFallback
func StripeErrorMessage(code string) string {
	return lookup(stripeErrorCodes, code, StripeErrorFallback)
}

// StripeRequirementMessage returns the message for a Stripe account
// requirement, or StripeRequirementFallback
func StripeRequirementMessage(requirement string) string {
	return lookup(stripeRequirements, requirement, StripeRequirementFallback)
}

// StripeDisabledMessage returns the message for a Stripe disabled-account
// reason, or StripeDisabledFallback
func StripeDisabledMessage(reason string) string {
	return lookup(stripeDisabledReasons, reason, StripeDisabledFallback)
}

// Table identifies one of the Stripe message tables
type Table string

// Available tables
const (
	TableErrorCodes   Table = "error"
	TableRequirements Table = "requirement"
	TableDisabled     Table = "disabled"
)

// Message looks code up in table. Unknown tables behave like TableErrorCodes.
func Message(table Table, code string) string {
	switch table {
	case TableRequirements:
		return StripeRequirementMessage(code)
	case TableDisabled:
		return StripeDisabledMessage(code)
	default:
		return StripeErrorMessage(code)
	}
}

// Codes returns the known codes of table in sorted order
func Codes(table Table) []string {
	var m map[string]string
	switch table {
	case TableRequirements:
		m = stripeRequirements
	case TableDisabled:
		m = stripeDisabledReasons
	default:
		m = stripeErrorCodes
	}

	return mapx.SortedKeys(m)
}

func lookup(table map[string]string, code, fallback string) string {
	if msg, ok := table[strings.TrimSpace(code)]; ok {
		return msg
	}
	return fallback
}
