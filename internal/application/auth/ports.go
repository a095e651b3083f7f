package auth

// MailSender puerto de correo saliente. La implementación SMTP vive en
// infrastructure/mail; en tests se sustituye por un doble.
type MailSender interface {
	// SendOTP envía el código de verificación al email del usuario.
	SendOTP(toEmail, name, code string) error
	// SendWelcome envía el correo de bienvenida tras verificar la cuenta.
	SendWelcome(toEmail, name string) error
}
