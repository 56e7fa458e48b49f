package mail

type SignatureRequestData struct {
	Name        string
	QuotationID string
	SigningURL  string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
