package usecases

import "context"

// ReminderEmailParams carries everything the mailer needs to render and
// send a single renewal reminder.
type ReminderEmailParams struct {
	To               string
	UserName         string
	SubscriptionName string
	Price            float64
	Currency         string
	Frequency        string
	PaymentMethod    string
	RenewalDate      string
	DaysLeft         int
}

// ReminderMailer sends renewal reminder emails.
type ReminderMailer interface {
	SendRenewalReminder(ctx context.Context, params ReminderEmailParams) error
}
