package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
	"github.com/vitalcheck/vitalcheck-api/rules"
	templates "github.com/vitalcheck/vitalcheck-api/templates/html"
)

const senderName = "VitalCheck"

// MailSender delivers a composed email. *sendgrid.Client satisfies it.
type MailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// NewSendGridSender returns a sender for apiKey, or nil when no key is configured
func NewSendGridSender(apiKey string) MailSender {
	if apiKey == "" {
		return nil
	}
	return sendgrid.NewSendClient(apiKey)
}

// AppointmentNotifier tells a doctor about a newly requested appointment
type AppointmentNotifier struct {
	UDB  databases.UserDatabase
	NDB  databases.NotificationDatabase
	Mail MailSender
	From string
}

// NotifyAppointmentCreated emails the doctor and stores an in-app notification for them.
// Both deliveries run concurrently and the first failure is returned.
func (n *AppointmentNotifier) NotifyAppointmentCreated(ctx context.Context, appt models.Appointment) error {
	var doctor, patient models.User
	lookups, lctx := errgroup.WithContext(ctx)
	lookups.Go(func() error { return n.lookup(lctx, appt.DoctorID, &doctor) })
	lookups.Go(func() error { return n.lookup(lctx, appt.PatientID, &patient) })
	if err := lookups.Wait(); err != nil {
		return err
	}

	deliveries, dctx := errgroup.WithContext(ctx)
	deliveries.Go(func() error {
		return n.sendDoctorEmail(doctor, templates.AppointmentEmailData{
			DoctorName:    doctor.Name,
			PatientName:   patient.Name,
			PreferredTime: appt.PreferredTime,
			Reason:        appt.Reason,
		})
	})
	deliveries.Go(func() error {
		_, err := n.NDB.InsertOne(dctx, models.Notification{
			UserID: appt.DoctorID,
			Type:   models.NotificationAppointment,
			Payload: map[string]interface{}{
				"appointmentId": appt.ID.Hex(),
				"patientId":     appt.PatientID,
				"preferredTime": appt.PreferredTime,
				"reason":        appt.Reason,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to insert appointment notification: %w", err)
		}
		return nil
	})
	return deliveries.Wait()
}

// lookup loads a user into dst; a missing user leaves dst empty
func (n *AppointmentNotifier) lookup(ctx context.Context, id string, dst *models.User) error {
	user, err := n.UDB.FindByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) || errors.Is(err, databases.ErrInvalidID) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up user %s: %w", id, err)
	}
	*dst = *user
	return nil
}

func (n *AppointmentNotifier) sendDoctorEmail(doctor models.User, data templates.AppointmentEmailData) error {
	if doctor.Email == "" {
		zap.S().Warn("No doctor email found, skipping email notification.")
		return nil
	}
	if n.Mail == nil {
		zap.S().Warnw("mail sender not configured, skipping email notification",
			"to", rules.AnonymizeEmail(doctor.Email))
		return nil
	}

	from := mail.NewEmail(senderName, n.From)
	to := mail.NewEmail(doctor.Name, doctor.Email)
	message := mail.NewSingleEmail(from,
		templates.AppointmentRequestSubject(data),
		to,
		templates.RenderAppointmentRequestText(data),
		templates.RenderAppointmentRequestEmail(data),
	)
	response, err := n.Mail.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send appointment email: %w", err)
	}
	if response != nil && response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	zap.S().Infow("appointment email sent", "to", rules.AnonymizeEmail(doctor.Email))
	return nil
}
