package models

// UserProfile is the identity of the business owner behind the active session.
//
// JSON field names are part of the persisted format and must not change:
// profiles written by earlier versions are read back on startup.
type UserProfile struct {
	// OwnerName is the display name of the business owner.
	OwnerName string `json:"ownerName"`

	// BusinessName is the registered trade name of the business.
	BusinessName string `json:"businessName"`

	// Email is the contact e-mail of the owner.
	Email string `json:"email"`

	// Phone is the contact phone number; OTP codes are "sent" here.
	Phone string `json:"phone"`

	// RegistrationNo is the GST/CIN number identifying the business.
	RegistrationNo string `json:"registrationNo"`

	// Location is a free-form city/country string.
	Location string `json:"location"`
}

// ProfileUpdate is a partial [UserProfile]. A nil field means "keep the
// current value"; a non-nil pointer to an empty string clears the field.
type ProfileUpdate struct {
	OwnerName      *string `json:"ownerName,omitempty"`
	BusinessName   *string `json:"businessName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	RegistrationNo *string `json:"registrationNo,omitempty"`
	Location       *string `json:"location,omitempty"`
}

// Apply merges u into p field by field and returns the result.
// p itself is not modified.
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	if u.OwnerName != nil {
		p.OwnerName = *u.OwnerName
	}
	if u.BusinessName != nil {
		p.BusinessName = *u.BusinessName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.RegistrationNo != nil {
		p.RegistrationNo = *u.RegistrationNo
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	return p
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.OwnerName == nil && u.BusinessName == nil && u.Email == nil &&
		u.Phone == nil && u.RegistrationNo == nil && u.Location == nil
}

// SignupRecord is one entry of the registered-businesses directory.
type SignupRecord struct {
	OwnerName      string `json:"ownerName"`
	BusinessName   string `json:"businessName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	RegistrationNo string `json:"registrationNo"`
	Location       string `json:"location"`

	// Password holds the credential as persisted. New records carry a bcrypt
	// hash; records written by older versions may hold plaintext.
	Password string `json:"password"`
}

// Profile returns the profile part of the record.
func (r SignupRecord) Profile() UserProfile {
	return UserProfile{
		OwnerName:      r.OwnerName,
		BusinessName:   r.BusinessName,
		Email:          r.Email,
		Phone:          r.Phone,
		RegistrationNo: r.RegistrationNo,
		Location:       r.Location,
	}
}

// StringPtr is a small helper for building [ProfileUpdate] values.
func StringPtr(s string) *string {
	return &s
}
