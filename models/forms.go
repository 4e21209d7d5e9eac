package models

// SignupForm is the raw input of the signup page.
type SignupForm struct {
	OwnerName       string `json:"ownerName"`
	BusinessName    string `json:"businessName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RegistrationNo  string `json:"registrationNo"`
	Location        string `json:"location"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	CaptchaToken    string `json:"captchaToken"`
	OTP             string `json:"otp,omitempty"`
}

// Record converts the form into a directory record. The password is copied
// as is; hashing is done by the caller.
func (f SignupForm) Record() SignupRecord {
	return SignupRecord{
		OwnerName:      f.OwnerName,
		BusinessName:   f.BusinessName,
		Email:          f.Email,
		Phone:          f.Phone,
		RegistrationNo: f.RegistrationNo,
		Location:       f.Location,
		Password:       f.Password,
	}
}

// LoginForm is the raw input of the login page. BusinessName is filled by
// resolving RegistrationNo against the directory.
type LoginForm struct {
	RegistrationNo string `json:"registrationNo"`
	BusinessName   string `json:"businessName"`
	Password       string `json:"password"`
	CaptchaToken   string `json:"captchaToken"`
	OTP            string `json:"otp,omitempty"`
}

// OTPChallenge is returned when a verification code has been "sent".
type OTPChallenge struct {
	Destination string `json:"destination"`
	Message     string `json:"message"`
}
