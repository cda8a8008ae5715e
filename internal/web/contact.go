package web

import (
	"fmt"
	"net/http"
	"net/smtp"
	"os"

	"github.com/gin-gonic/gin"
)

// Contact form fragment, rendered into the page with HTMX.
func (s *Server) handleContactForm(c *gin.Context) {
	lang, _ := s.resolvePreferences(c)
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"lang":  lang,
		"title": s.catalog.T(lang, "literals.contactTitle"),
	})
}

func (s *Server) handleContact(c *gin.Context) {
	lang, _ := s.resolvePreferences(c)
	name := c.PostForm("fullName")
	email := c.PostForm("email")
	message := c.PostForm("message")

	if err := sendContactEmail(name, email, message); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": s.catalog.T(lang, "literals.contactError"),
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": s.catalog.T(lang, "literals.contactSuccess"),
	})
}

func sendContactEmail(name, email, message string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	toEmail := os.Getenv("TO_EMAIL")

	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}
	if smtpUser == "" || smtpPass == "" || toEmail == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio contact: %s", name)
	body := fmt.Sprintf("New contact form submission:\n\nName: %s\nEmail: %s\nMessage:\n%s\n", name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + smtpUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpUser, []string{toEmail}, msg)
}
