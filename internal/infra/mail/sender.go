package mail

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"gopkg.in/gomail.v2"
)

// Body templates are embedded so the binary carries no template directory.
const signatureRequestBody = `Dear {{.Name}},<br><br>
Please find your quotation attached.<br><br>
To review and sign it, click the link below:<br>
<a href="{{.SigningURL}}">{{.SigningURL}}</a><br><br>
Best regards,<br>
Root Home`

var signatureRequestTmpl = template.Must(template.New("signature_request").Parse(signatureRequestBody))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendSignatureRequest emails the signer the signing link with the rendered
// quotation PDF attached.
func (s *EmailSender) SendSignatureRequest(to, name, quotationID, signingURL string, pdf []byte) error {
	data := SignatureRequestData{
		Name:        name,
		QuotationID: quotationID,
		SigningURL:  signingURL,
	}

	var body bytes.Buffer
	if err := signatureRequestTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Quotation %s – Signature Request", quotationID))
	m.SetBody("text/html", body.String())
	m.Attach(fmt.Sprintf("%s.pdf", quotationID), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	return s.send(m)
}

// SendNotification delivers the signed-quotation alert email to one
// internal recipient.
func (s *EmailSender) SendNotification(to, subject, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", message)

	return s.send(m)
}

func (s *EmailSender) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email over SMTP: %w", err)
	}

	return nil
}
