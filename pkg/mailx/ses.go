package mailx

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/causewayhq/causeway/pkg/slogx"
)

// SESConfig configures the Amazon SESv2 mailer.
type SESConfig struct {
	Region    string
	FromEmail string
	FromName  string
}

// SESMailer sends invitation email through Amazon SESv2.
type SESMailer struct {
	client *sesv2.Client
	from   string
}

// NewSESMailer loads the default AWS credential chain and builds a
// SESv2 client for the configured region.
func NewSESMailer(ctx context.Context, cfg SESConfig) (*SESMailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}

	return &SESMailer{
		client: sesv2.NewFromConfig(awsCfg),
		from:   from,
	}, nil
}

func (m *SESMailer) SendInvite(ctx context.Context, email InviteEmail) error {
	log := slogx.FromContext(ctx)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{email.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(inviteSubject(email)),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(inviteHTMLBody(email)),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(inviteTextBody(email)),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := m.client.SendEmail(ctx, input)
	if err != nil {
		log.Error("ses send failed", "to", email.To, "err", err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	messageID := ""
	if result.MessageId != nil {
		messageID = *result.MessageId
	}
	log.Info("invite email sent", "to", email.To, "message_id", messageID)

	return nil
}
