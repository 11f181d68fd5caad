package mailer

import (
	"bytes"
	"html/template"
	"log"
)

const appName = "InventoryPro"

var resetHTML = template.Must(template.New("reset").Parse(
	`<p>Click this link to reset your password (expires in 1 hour):</p>
<p><a href="{{.}}">{{.}}</a></p>`))

// PasswordReset builds the email carrying a reset link.
func PasswordReset(to, link string) Message {
	return Message{
		To:      to,
		Subject: appName + " Password Reset",
		Text:    "Open this link to reset your password (expires in 1 hour):\n" + link,
		HTML:    renderHTML(resetHTML, link),
	}
}

// renderHTML returns "" when the template fails, leaving the plain-text body.
func renderHTML(tmpl *template.Template, data interface{}) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("mailer: render %s template: %v", tmpl.Name(), err)
		return ""
	}
	return buf.String()
}

// PasswordChanged builds the confirmation sent after a successful reset.
func PasswordChanged(to string) Message {
	return Message{
		To:      to,
		Subject: appName + " - Password changed",
		Text:    "Your password was changed. If you did not request this, contact support.",
	}
}
