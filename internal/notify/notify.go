// notify.go
//
// Pitch 2 Angels application portal: public pitch submissions and admin review service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of pitch2angels-portal.
// pitch2angels-portal is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// pitch2angels-portal is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with pitch2angels-portal.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package notify sends the applicant confirmation email.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pitch2angels/portal/internal/config"
	"github.com/pitch2angels/portal/internal/logger"
	"github.com/pitch2angels/portal/internal/models"
)

// Notifier tells an applicant their application was received
type Notifier interface {
	ApplicationReceived(ctx context.Context, app *models.Application) error
}

// SESService is the subset of the SES client used here
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// New returns an SES notifier when SES_ENABLED is set, otherwise a no-op one
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (Notifier, error) {
	if !cfg.SESEnabled {
		return Noop{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SESRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSES(ses.NewFromConfig(awsCfg), cfg.SESFromEmail, log), nil
}

// Noop discards notifications
type Noop struct{}

// ApplicationReceived implements Notifier
func (Noop) ApplicationReceived(context.Context, *models.Application) error { return nil }

// SES sends notifications through Amazon SES
type SES struct {
	client SESService
	from   string
	log    logger.Logger
}

// NewSES creates an SES notifier
func NewSES(client SESService, from string, log logger.Logger) *SES {
	return &SES{client: client, from: from, log: log.WithFields(logger.Fields{"component": "ses_notifier"})}
}

// ApplicationReceived implements Notifier
func (s *SES) ApplicationReceived(ctx context.Context, app *models.Application) error {
	subject, text, html := confirmation(app)

	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{app.Email},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(text), Charset: aws.String("UTF-8")},
				Html: &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	s.log.Info("confirmation email sent", logger.Fields{
		"application_id": app.ID,
		"message_id":     aws.ToString(out.MessageId),
	})
	return nil
}
