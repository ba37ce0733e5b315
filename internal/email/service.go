package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/SJ-Slasher/FMS/internal/logger"
	"github.com/SJ-Slasher/FMS/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	queueKey  = "emails"
	failedKey = "emails:failed"
	maxTries  = 3

	TypeConfirmation = "booking_confirmation"
	TypeCancellation = "booking_cancellation"
	TypeTest         = "test"
)

type Job struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// BookingNotice is what a customer is told about a booking.
type BookingNotice struct {
	BookingID    int
	CustomerName string
	Email        string
	CourtName    string
	Date         string
	StartTime    string
	EndTime      string
	Amount       decimal.Decimal
}

type SMTPConfig struct {
	From     string
	FromName string
	Host     string
	Port     string
	User     string
	Pass     string
}

type Service struct {
	redis      *redis.Client
	smtp       SMTPConfig
	deliver    func(Job) error
	retryDelay time.Duration
}

func New(rdb *redis.Client, cfg SMTPConfig) *Service {
	s := &Service{
		redis:      rdb,
		smtp:       cfg,
		retryDelay: 5 * time.Second,
	}
	s.deliver = s.sendNow
	return s
}

func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	job := Job{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Error("Failed to queue email", "to", to, "error", err)
		return err
	}

	logger.Info("Email queued", "type", emailType, "to", to)
	return nil
}

// Start consumes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("Bad email data", "error", err)
		return
	}

	job.Tries++
	logger.Debug("Sending email", "to", job.To, "attempt", job.Tries)
	if err := s.deliver(job); err != nil {
		logger.Error("Failed to send email", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries < maxTries {
			s.requeue(ctx, job)
		} else {
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "success")
	logger.Info("Email sent", "type", job.Type, "to", job.To)
}

func (s *Service) requeue(ctx context.Context, job Job) {
	select {
	case <-ctx.Done():
	case <-time.After(s.retryDelay):
	}

	data, _ := json.Marshal(job)
	if err := s.redis.LPush(context.Background(), queueKey, string(data)).Err(); err != nil {
		logger.Error("Failed to requeue email", "to", job.To, "error", err)
	}
}

func (s *Service) sendNow(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.smtp.FromName, s.smtp.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtp.User != "" && s.smtp.Pass != "" {
		auth = smtp.PlainAuth("", s.smtp.User, s.smtp.Pass, s.smtp.Host)
	}

	addr := s.smtp.Host + ":" + s.smtp.Port
	return smtp.SendMail(addr, auth, s.smtp.From, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job Job, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, string(data))
	logger.Error("Email moved to failed queue", "to", job.To)
}

func (s *Service) QueueLength(ctx context.Context) (int64, error) {
	return s.redis.LLen(ctx, queueKey).Result()
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendBookingConfirmation(ctx context.Context, n BookingNotice) error {
	subject := fmt.Sprintf("Booking #%d Confirmed - %s", n.BookingID, n.CourtName)
	body := fmt.Sprintf(`Hi %s,

Your court booking is confirmed!

Court: %s
Date: %s
Time: %s - %s
Amount: %s

See you on the pitch!

- %s`, n.CustomerName, n.CourtName, n.Date, n.StartTime, n.EndTime, n.Amount.StringFixed(2), s.smtp.FromName)

	return s.Send(ctx, TypeConfirmation, n.Email, n.CustomerName, subject, body)
}

func (s *Service) SendBookingCancellation(ctx context.Context, n BookingNotice) error {
	subject := fmt.Sprintf("Booking #%d Cancelled - %s", n.BookingID, n.CourtName)
	body := fmt.Sprintf(`Hi %s,

Your court booking has been cancelled:

Court: %s
Date: %s
Time: %s - %s

The slot is free again if you want to rebook.

- %s`, n.CustomerName, n.CourtName, n.Date, n.StartTime, n.EndTime, s.smtp.FromName)

	return s.Send(ctx, TypeCancellation, n.Email, n.CustomerName, subject, body)
}
