// internal/email/mailer/org_invitation.go
package mailer

import (
	"time"

	"github.com/classloop/membership/internal/email"
)

// InvitationTemplateData contains data for the invitation email template
type InvitationTemplateData struct {
	OrgName   string
	RoleType  string
	Code      string
	ExpiresAt string
}

// SendInvitationEmail delivers an invitation code to a prospective member.
func SendInvitationEmail(s *email.Service, to, orgName, roleType, code string, expiresAt time.Time) error {
	templateData := InvitationTemplateData{
		OrgName:   orgName,
		RoleType:  roleType,
		Code:      code,
		ExpiresAt: expiresAt.Format("Jan 2, 2006 15:04 MST"),
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Classloop",
		Subject:      "You're invited to join " + orgName + " on Classloop",
		TemplateName: "org_invitation",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
