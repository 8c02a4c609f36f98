package email

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"eventboard/config"
	"eventboard/internal/domain"
)

// NewMailer creates a mailer from config. Provider "ses" uses AWS SES;
// anything else uses a no-op mailer that only logs.
func NewMailer(cfg config.MailerConfig) (domain.Mailer, error) {
	switch cfg.Provider {
	case "ses":
		awsCfg := aws.Config{
			Region: cfg.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
			),
		}
		return &sesMailer{
			client:      ses.NewFromConfig(awsCfg),
			fromAddress: cfg.FromAddress,
			fromName:    cfg.FromName,
		}, nil
	default:
		if cfg.Provider != "" && cfg.Provider != "noop" {
			log.Printf("[MAILER] Unknown email provider %q, using noop", cfg.Provider)
		}
		return &noopMailer{}, nil
	}
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
}

func (s *sesMailer) SendEnrollmentConfirmation(ctx context.Context, data *domain.EnrollmentEmailData) error {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}
	subject := fmt.Sprintf("You are enrolled: %s", data.CompetitionName)
	text := fmt.Sprintf(
		"Hi %s,\n\nYour enrollment in %q is confirmed. The competition starts at %s.\n\nSee you there!",
		data.FirstName, data.CompetitionName, data.CompetitionStart.Format("2006-01-02 15:04 MST"),
	)
	input := &ses.SendEmailInput{
		Source:      aws.String(source),
		Destination: &types.Destination{ToAddresses: []string{data.Email}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(text), Charset: aws.String("UTF-8")},
			},
		},
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	log.Printf("[MAILER] Enrollment confirmation sent via SES. MessageID: %s", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct{}

func (n *noopMailer) SendEnrollmentConfirmation(ctx context.Context, data *domain.EnrollmentEmailData) error {
	log.Printf("[MAILER] Enrollment confirmation would be sent (noop) to %s", data.Email)
	return nil
}
