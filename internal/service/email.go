package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rentit-backend/internal/domain"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendgridEmailService) SendBookingConfirmation(ctx context.Context, email, name, reference string, totalInr int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour booking %s is confirmed. Total fare: INR %d.\n\nThe RentIt Team", name, reference, totalInr)
	return s.send(ctx, email, name, fmt.Sprintf("Booking %s confirmed", reference), body)
}

func (s *sendgridEmailService) SendHireRequest(ctx context.Context, driverEmail, driverName, renterName, reference string) error {
	body := fmt.Sprintf("Hello %s,\n\n%s has requested to hire you (booking %s). Please accept or decline the request.\n\nThe RentIt Team", driverName, renterName, reference)
	return s.send(ctx, driverEmail, driverName, "New hire request", body)
}

func (s *sendgridEmailService) SendHireDecision(ctx context.Context, email, name, reference string, accepted bool) error {
	decision := "declined"
	if accepted {
		decision = "accepted"
	}
	body := fmt.Sprintf("Hello %s,\n\nYour driver hire request %s has been %s.\n\nThe RentIt Team", name, reference, decision)
	return s.send(ctx, email, name, fmt.Sprintf("Hire request %s", decision), body)
}

func (s *sendgridEmailService) SendVerificationDecision(ctx context.Context, email, name, subject string, status domain.VerificationStatus) error {
	body := fmt.Sprintf("Hello %s,\n\nVerification for %s has been decided: %s.\n\nThe RentIt Team", name, subject, status)
	return s.send(ctx, email, name, fmt.Sprintf("Verification %s", status), body)
}

func (s *sendgridEmailService) SendInsuranceExpiryReminder(ctx context.Context, email, name, vehicle, expiresOn string) error {
	body := fmt.Sprintf("Hello %s,\n\nThe insurance for %s expires on %s. Please renew it to keep the vehicle listed.\n\nThe RentIt Team", name, vehicle, expiresOn)
	return s.send(ctx, email, name, "Vehicle insurance expiring soon", body)
}

// noopEmailService is used in development when no SendGrid key is
// configured.
type noopEmailService struct{}

func NewNoopEmailService() EmailService { return noopEmailService{} }

func (noopEmailService) SendBookingConfirmation(context.Context, string, string, string, int64) error {
	return nil
}
func (noopEmailService) SendHireRequest(context.Context, string, string, string, string) error {
	return nil
}
func (noopEmailService) SendHireDecision(context.Context, string, string, string, bool) error {
	return nil
}
func (noopEmailService) SendVerificationDecision(context.Context, string, string, string, domain.VerificationStatus) error {
	return nil
}
func (noopEmailService) SendInsuranceExpiryReminder(context.Context, string, string, string, string) error {
	return nil
}
