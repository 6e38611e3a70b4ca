package entities

// EmailMessage is built for a single delivery and discarded afterwards.
type EmailMessage struct {
	Subject string
	Body    string
	From    string
	To      string
}
