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

	"github.com/gradeops/submissions/utilities/subm"
)

// Send delivers one email, no retry
func (notifier *Notifier) Send(ctx context.Context, to, subject, body string) (err error) {
	err = notifier.transport.Deliver(ctx, Email{
		From:    notifier.from,
		To:      to,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("%w: to %s subject %s %w", subm.ErrEmailDelivery, to, subject, err)
	}
	return nil
}
