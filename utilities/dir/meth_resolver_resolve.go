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

package dir

import (
	"context"
	"fmt"
	"log"
	"net/mail"

	"github.com/gradeops/submissions/utilities/logging"
)

// Resolve returns the email address to notify for a user id
func (resolver *Resolver) Resolve(ctx context.Context, userID string) (email string, err error) {
	if IsEmailAddress(userID) {
		return userID, nil
	}
	if resolver.lookup != nil {
		email, err = resolver.lookup.LookupEmail(ctx, userID)
		if err == nil && email != "" {
			return email, nil
		}
		if err == nil {
			err = fmt.Errorf("no email found for user %s", userID)
		}
		if resolver.defaultRecipient == "" {
			return "", err
		}
		log.Println(logging.Entry{
			Severity:    "WARNING",
			Message:     "recipient_fallback",
			Description: fmt.Sprintf("use default recipient %v", err),
			Component:   "dir",
			UserID:      userID,
		})
	}
	if resolver.defaultRecipient == "" {
		return "", fmt.Errorf("no directory and no default recipient to notify user %s", userID)
	}
	return resolver.defaultRecipient, nil
}

// IsEmailAddress reports whether s is a bare email address
func IsEmailAddress(s string) bool {
	address, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return address.Address == s
}
