// SPDX-License-Identifier: GPL-3.0-only

package notifications

import (
	"bytes"
	"crypto/tls"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"mineeast-server/commons"

	"github.com/caarlos0/env/v11"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// SMTPConfig holds the mail server settings, read on every send.
type SMTPConfig struct {
	Host      string `env:"SMTP_HOST,notEmpty"`
	Port      int    `env:"SMTP_PORT" envDefault:"587"`
	Username  string `env:"SMTP_USERNAME,notEmpty"`
	Password  string `env:"SMTP_PASSWORD,notEmpty"`
	FromEmail string `env:"SMTP_FROM_EMAIL,notEmpty"`
	FromName  string `env:"SMTP_FROM_NAME" envDefault:"MineEast"`
}

func LoadSMTPConfig() (SMTPConfig, error) {
	commons.LoadEnvFile()
	var cfg SMTPConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse smtp config: %w", err)
	}
	return cfg, nil
}

// MockEmailClient renders the email and logs it instead of sending it.
func MockEmailClient(data NotificationData) error {
	htmlBody, err := renderEmail(data)
	if err != nil {
		return err
	}
	commons.Logger.Infof("Mock email to=%s subject=%q template=%s", data.To, data.Subject, data.Template)
	commons.Logger.Debug(htmlBody)
	return nil
}

func SMTPClient(data NotificationData) error {
	cfg, err := LoadSMTPConfig()
	if err != nil {
		return err
	}
	htmlBody, err := renderEmail(data)
	if err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", message.FormatAddress(cfg.FromEmail, cfg.FromName))
	toName := ""
	if data.ToName != nil {
		toName = *data.ToName
	}
	message.SetHeader("To", message.FormatAddress(data.To, toName))
	message.SetHeader("Subject", data.Subject)
	message.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.TLSConfig = &tls.Config{ServerName: cfg.Host}

	if err := dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send email via SMTP: %w", err)
	}
	commons.Logger.Infof("Welcome email sent to %s", data.To)
	return nil
}

// renderEmail checks the required fields and executes the embedded template.
func renderEmail(data NotificationData) (string, error) {
	switch {
	case data.To == "":
		return "", errors.New("email recipient is required")
	case data.Subject == "":
		return "", errors.New("email subject is required")
	case data.Template == "":
		return "", errors.New("email template is required")
	}
	return loadAndRenderTemplate(data.Template, data.Variables)
}

func loadAndRenderTemplate(templateName string, variables map[string]any) (string, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/"+templateName+".html")
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", templateName, err)
	}
	return buf.String(), nil
}
