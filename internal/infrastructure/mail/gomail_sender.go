package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/aguatrack/aguatrack-api/internal/application/auth"
	"github.com/aguatrack/aguatrack-api/pkg/config"
	"github.com/aguatrack/aguatrack-api/pkg/logger"
)

var _ auth.MailSender = (*GomailSender)(nil)

// GomailSender envía correos transaccionales (OTP, bienvenida) por SMTP.
// Con SMTP_HOST vacío queda en modo consola: escribe el correo al log en vez
// de enviarlo, suficiente para development sin cuenta SMTP.
type GomailSender struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewGomailSender construye el sender a partir de la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig, log *logger.Logger) *GomailSender {
	return &GomailSender{cfg: cfg, log: log.Component("mail")}
}

// SendOTP envía el código de verificación al email del usuario.
func (s *GomailSender) SendOTP(toEmail, name, code string) error {
	subject := "Tu código de verificación"
	body := fmt.Sprintf(
		"<p>Hola %s,</p><p>Tu código de verificación es <b>%s</b>.</p><p>Expira en 10 minutos. Si no lo solicitaste, ignora este correo.</p>",
		displayName(name, toEmail), code,
	)
	return s.send(toEmail, subject, body)
}

// SendWelcome envía el correo de bienvenida tras verificar la cuenta.
func (s *GomailSender) SendWelcome(toEmail, name string) error {
	subject := "Bienvenido a AguaTrack"
	body := fmt.Sprintf(
		"<p>Hola %s,</p><p>Tu cuenta quedó verificada. Ya puedes registrar tu negocio y empezar a llevar tus entregas.</p>",
		displayName(name, toEmail),
	)
	return s.send(toEmail, subject, body)
}

func (s *GomailSender) send(toEmail, subject, body string) error {
	if s.cfg.Host == "" {
		s.log.Info().
			Str("to", toEmail).
			Str("subject", subject).
			Str("body", body).
			Msg("SMTP no configurado, correo solo a consola")
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
