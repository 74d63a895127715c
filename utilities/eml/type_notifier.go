// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eml

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Email one plain text message
type Email struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Transport delivers an email
type Transport interface {
	Deliver(ctx context.Context, email Email) error
}

// SMTPSettings relay connection settings
type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	// STARTTLS mandatory when true, opportunistic otherwise
	RequireTLS bool
}

// Notifier sends status emails from a fixed sender
type Notifier struct {
	from      string
	transport Transport
}

type smtpTransport struct {
	client *mail.Client
}

// NewNotifier returns a notifier delivering through the SMTP relay
func NewNotifier(smtpSettings SMTPSettings, from string) (*Notifier, error) {
	tlsPolicy := mail.TLSOpportunistic
	if smtpSettings.RequireTLS {
		tlsPolicy = mail.TLSMandatory
	}
	client, err := mail.NewClient(smtpSettings.Host,
		mail.WithPort(smtpSettings.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(smtpSettings.Username),
		mail.WithPassword(smtpSettings.Password),
		mail.WithTLSPolicy(tlsPolicy))
	if err != nil {
		return nil, fmt.Errorf("mail.NewClient %s:%d %v", smtpSettings.Host, smtpSettings.Port, err)
	}
	return NewNotifierWithTransport(smtpTransport{client: client}, from), nil
}

// NewNotifierWithTransport returns a notifier delivering through the provided transport
func NewNotifierWithTransport(transport Transport, from string) *Notifier {
	return &Notifier{
		from:      from,
		transport: transport,
	}
}

func (transport smtpTransport) Deliver(ctx context.Context, email Email) error {
	msg, err := buildMsg(email)
	if err != nil {
		return err
	}
	return transport.client.DialAndSendWithContext(ctx, msg)
}

func buildMsg(email Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(email.From); err != nil {
		return nil, fmt.Errorf("msg.From %s %v", email.From, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("msg.To %s %v", email.To, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Body)
	return msg, nil
}
