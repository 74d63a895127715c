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
	"errors"
	"fmt"
	"testing"

	"github.com/gradeops/submissions/utilities/subm"
)

type fakeTransport struct {
	delivered []Email
	err       error
}

func (f *fakeTransport) Deliver(ctx context.Context, email Email) error {
	if f.err != nil {
		return f.err
	}
	f.delivered = append(f.delivered, email)
	return nil
}

func TestUnitSend(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		transport := &fakeTransport{}
		notifier := NewNotifierWithTransport(transport, "postmaster@example.edu")
		err := notifier.Send(context.Background(), "u1@example.edu", "Success", "Release stored in GCS at gs://b/u1/a1/release.zip")
		if err != nil {
			t.Fatal(err)
		}
		if len(transport.delivered) != 1 {
			t.Fatalf("want 1 email got %d", len(transport.delivered))
		}
		want := Email{
			From:    "postmaster@example.edu",
			To:      "u1@example.edu",
			Subject: "Success",
			Body:    "Release stored in GCS at gs://b/u1/a1/release.zip",
		}
		if transport.delivered[0] != want {
			t.Errorf("want %v got %v", want, transport.delivered[0])
		}
	})
	t.Run("transportFails", func(t *testing.T) {
		transport := &fakeTransport{err: fmt.Errorf("535 authentication failed")}
		err := NewNotifierWithTransport(transport, "postmaster@example.edu").Send(context.Background(), "u1@example.edu", "Error", "boom")
		if !errors.Is(err, subm.ErrEmailDelivery) {
			t.Errorf("want ErrEmailDelivery got %v", err)
		}
	})
}

func TestUnitBuildMsg(t *testing.T) {
	var testCases = []struct {
		name    string
		email   Email
		wantErr bool
	}{
		{
			name:  "valid",
			email: Email{From: "postmaster@example.edu", To: "u1@example.edu", Subject: "Success", Body: "ok"},
		},
		{
			name:    "invalidFrom",
			email:   Email{From: "not an address", To: "u1@example.edu"},
			wantErr: true,
		},
		{
			name:    "invalidTo",
			email:   Email{From: "postmaster@example.edu", To: "u1"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			msg, err := buildMsg(tc.email)
			if tc.wantErr {
				if err == nil {
					t.Errorf("want an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			recipients, err := msg.GetRecipients()
			if err != nil {
				t.Fatal(err)
			}
			if len(recipients) != 1 || recipients[0] != tc.email.To {
				t.Errorf("want recipient %s got %v", tc.email.To, recipients)
			}
		})
	}
}
