// Package app contains the user-facing notice texts shared by the HTTP API
// and the terminal client.
//
// Every notice is a short title plus a sentence. Keeping them in one place
// keeps the wording identical on both surfaces.
package app

// ProductName appears in welcome notices.
const ProductName = "VyaparAI"

// Access flow notices.
const (
	TitleIncompleteForm = "Incomplete form"
	MsgIncompleteForm   = "Please fill all fields and complete the captcha."

	TitlePasswordMismatch = "Password mismatch"
	MsgPasswordMismatch   = "Passwords do not match. Please re-enter."

	TitleWeakPassword = "Weak password"
	MsgWeakPassword   = "Password must be at least 8 characters."

	TitleOTPSent = "OTP Sent"
	// MsgOTPSentTo is formatted with the phone number.
	MsgOTPSentTo         = "A verification code has been sent to %s."
	MsgOTPSentRegistered = "A verification code has been sent to your registered phone."

	TitleInvalidOTP = "Invalid OTP"
	MsgInvalidOTP   = "Please enter the 6-digit verification code."

	TitleAccountCreated = "Account Created!"
	MsgAccountCreated   = "Welcome to " + ProductName + ". Redirecting to login…"

	TitleLoginSuccessful = "Login Successful"
	// MsgWelcomeBack is formatted with the business name.
	MsgWelcomeBack = "Welcome back, %s!"

	TitleBusinessNotFound = "Business not found"
	MsgBusinessNotFound   = "No business is registered with this number."

	TitleWrongPassword = "Login failed"
	MsgWrongPassword   = "Invalid registration number or password."

	TitleSessionExpired = "Session expired"
	MsgLoginRequired    = "Please log in to continue."
)

// Profile notices.
const (
	TitleProfileUpdated = "Profile Updated"
	MsgProfileUpdated   = "Your profile has been saved successfully."

	TitleReadOnlyField = "Read-only field"
	MsgReadOnlyField   = "Business name and registration number cannot be changed."

	TitleNothingToUpdate = "Nothing to update"
	MsgNothingToUpdate   = "Change at least one field before saving."
)

// Dashboard notices.
const (
	// TitleUploadFormat is formatted with the invoice type.
	TitleUploadFormat = "%s Invoice Upload"
	MsgUploadPending  = "Upload feature will be available when backend is connected."

	TitleViewInvoice = "View Invoice"
	// MsgViewingFormat is formatted with the invoice id.
	MsgViewingFormat = "Viewing %s"

	TitleDownload = "Download"
	// MsgDownloadingFormat is formatted with the invoice id.
	MsgDownloadingFormat = "Downloading %s"

	TitleAuditReport = "Audit Report"
	// MsgReportFormat is formatted with the invoice id.
	MsgReportFormat = "Generating report for %s"

	TitleCopied = "Copied"
	// MsgCopiedFormat is formatted with the invoice id.
	MsgCopiedFormat = "%s copied to clipboard"

	TitleInvoiceNotFound = "Invoice not found"
	MsgInvoiceNotFound   = "No invoice matches this id."

	TitleInvalidQuery = "Invalid query"
	MsgInvalidQuery   = "Unsupported filter or sort option."

	// MsgWelcomeOwnerFormat is formatted with the owner name, "User" when empty.
	MsgWelcomeOwnerFormat = "Welcome back, %s"
	DefaultOwnerName      = "User"
)

// Generic notices.
const (
	TitleInvalidData = "Invalid data"
	MsgInvalidData   = "invalid data provided"

	TitleStorageUnavailable = "Storage unavailable"
	MsgStorageUnavailable   = "Local storage is unavailable. Please try again."

	TitleInternalError = "Something went wrong"
	MsgInternalError   = "internal server error"

	TitleTooManyRequests = "Too many requests"
	MsgTooManyRequests   = "Too many requests. Please try again later."

	TitleCancelled = "Cancelled"
	MsgCancelled   = "The request was cancelled."
)
