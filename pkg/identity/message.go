package identity

import "errors"

var messages = map[string]map[error]string{
	"en": {
		ErrInvalidCredentials: "Wrong email or password, or the account is not registered.",
		ErrEmailInUse:         "That email is already registered.",
		ErrWeakPassword:       "Password must be at least 6 characters.",
		ErrInvalidEmail:       "Please enter a valid email address.",
		ErrUnsupported:        "This sign in method is not available.",
		ErrUnavailable:        "Sign in service is unavailable, try again.",
		ErrUnknownUser:        "Account not found.",
	},
	"id": {
		ErrInvalidCredentials: "Email atau kata sandi salah / belum terdaftar",
		ErrEmailInUse:         "Email sudah terdaftar",
		ErrWeakPassword:       "Kata sandi minimal 6 karakter",
		ErrInvalidEmail:       "Alamat email tidak valid",
		ErrUnsupported:        "Metode masuk ini tidak tersedia",
		ErrUnavailable:        "Layanan masuk tidak tersedia, coba lagi",
		ErrUnknownUser:        "Akun tidak ditemukan",
	},
}

var fallback = map[string]string{
	"en": "Sign in failed.",
	"id": "Gagal masuk",
}

// Message maps a provider error to a short message in locale. Unknown
// locales use English; unknown errors get a generic message.
func Message(err error, locale string) string {
	if err == nil {
		return ""
	}
	table, ok := messages[locale]
	if !ok {
		locale = "en"
		table = messages[locale]
	}
	for target, msg := range table {
		if errors.Is(err, target) {
			return msg
		}
	}
	return fallback[locale]
}
