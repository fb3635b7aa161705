package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manara/models"
)

func (s *SiteModule) contactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "site_contact.html", gin.H{})
}

// contactPost stores the message with status "new". When SMTP is
// configured, a notification email goes out best-effort; a delivery failure
// is logged and never shown to the visitor.
func (s *SiteModule) contactPost(c *gin.Context) {
	msg := models.ContactMessage{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	}

	if err := s.contacts.Create(&msg); err != nil {
		s.log.WithError(err).Error("contact message insert failed")
		c.HTML(http.StatusInternalServerError, "site_contact.html", gin.H{
			"error":   "تعذر إرسال الرسالة. يرجى المحاولة مرة أخرى.",
			"name":    msg.Name,
			"email":   msg.Email,
			"subject": msg.Subject,
			"message": msg.Message,
		})
		return
	}

	if s.mail.Enabled() {
		if err := s.mail.SendContactNotification(msg); err != nil {
			s.log.WithError(err).Warn("contact notification email failed")
		}
	}

	c.HTML(http.StatusOK, "site_contact.html", gin.H{
		"success": "تم إرسال رسالتك بنجاح. سنتواصل معك قريباً.",
	})
}
