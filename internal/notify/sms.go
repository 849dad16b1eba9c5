package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/cgRGM/deadpartymedia/pkg/natsinfo"
)

const smsMessageLimit = 100

// snsClient is the subset of the SNS client SMSSender uses.
type snsClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SMSSenderConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SenderID        string
}

// SMSSender delivers interview request notifications as SMS through AWS SNS.
type SMSSender struct {
	client   snsClient
	senderID string
}

func NewSMSSender(ctx context.Context, config SMSSenderConfig) (*SMSSender, error) {
	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(config.Region),
	}
	if config.AccessKeyID != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SMSSender{
		client:   sns.NewFromConfig(awsCfg),
		senderID: config.SenderID,
	}, nil
}

func (s *SMSSender) Channel() string { return ChannelSMS }

func (s *SMSSender) Eligible(job natsinfo.NotificationJob) bool {
	return job.ArtistPhone != ""
}

func (s *SMSSender) Send(ctx context.Context, job natsinfo.NotificationJob) error {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(job.ArtistPhone),
		Message:     aws.String(SMSBody(job)),
	}
	if s.senderID != "" {
		input.MessageAttributes = senderIDAttribute(s.senderID)
	}

	if _, err := s.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("publish sms: %w", err)
	}
	return nil
}

func senderIDAttribute(senderID string) map[string]snstypes.MessageAttributeValue {
	return map[string]snstypes.MessageAttributeValue{
		"AWS.SNS.SMS.SenderID": {
			DataType:    aws.String("String"),
			StringValue: aws.String(senderID),
		},
	}
}

func SMSBody(job natsinfo.NotificationJob) string {
	message := job.Message
	// Truncate on a rune boundary so a multi-byte character is never split.
	if runes := []rune(message); len(runes) > smsMessageLimit {
		message = string(runes[:smsMessageLimit]) + "..."
	}
	return fmt.Sprintf("New interview request from Dead Party Media: %s", message)
}
