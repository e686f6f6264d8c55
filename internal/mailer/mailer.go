package mailer

import (
	"fmt"
	"time"

	"github.com/lshigami/Zooracle/config"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Mailer delivers the two transactional mails the account flows need.
// Delivery failures are reported to the caller, which decides whether the
// flow degrades or fails.
type Mailer interface {
	SendVerificationCode(email, code string) error
	SendPasswordReset(email, resetURL string) error
}

type smtpMailer struct {
	dialer     *gomail.Dialer
	username   string
	senderName string
}

func NewSMTPMailer(cfg *config.Config) Mailer {
	dialer := gomail.NewDialer(cfg.SMTP.Server, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	if cfg.SMTP.Username == "" || cfg.SMTP.Password == "" {
		log.Warn().Msg("SMTP credentials are not configured; verification and reset mail will fail")
	}
	return &smtpMailer{
		dialer:     dialer,
		username:   cfg.SMTP.Username,
		senderName: cfg.SMTP.SenderName,
	}
}

func (m *smtpMailer) SendVerificationCode(email, code string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2>Подтверждение почты</h2>
			<p>Ваш код подтверждения для регистрации в Zooracle:</p>
			<p style="font-size: 28px; letter-spacing: 4px; font-weight: bold;">%s</p>
			<p>Код действителен в течение 5 минут.</p>
			<p style="color: #777; font-size: 12px;">&copy; %d Zooracle</p>
		</div>`, code, time.Now().Year())
	return m.send(email, "Подтверждение почты Zooracle", body)
}

func (m *smtpMailer) SendPasswordReset(email, resetURL string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2>Восстановление пароля</h2>
			<p>Вы получили это письмо, потому что запросили сброс пароля для вашей учетной записи Zooracle.</p>
			<p style="text-align: center;">
				<a href="%s" style="display: inline-block; background-color: #4CAF50; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px;">Сбросить пароль</a>
			</p>
			<p>Если кнопка не работает, скопируйте ссылку в адресную строку браузера:</p>
			<p>%s</p>
			<p>Если вы не запрашивали сброс пароля, проигнорируйте это письмо.</p>
			<p>Ссылка действительна в течение 24 часов.</p>
			<p style="color: #777; font-size: 12px;">&copy; %d Zooracle</p>
		</div>`, resetURL, resetURL, time.Now().Year())
	return m.send(email, "Восстановление пароля Zooracle", body)
}

func (m *smtpMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.username, m.senderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send mail")
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	log.Info().Str("to", to).Str("subject", subject).Msg("Mail sent")
	return nil
}
