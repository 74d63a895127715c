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

package submission2gcs

import (
	"context"
	"fmt"

	"github.com/gradeops/submissions/utilities/subm"
)

// notify emails the user of the invocation
func (inv *invocation) notify(ctx context.Context, subject, body string) error {
	to, err := inv.global.resolver.Resolve(ctx, inv.userID)
	if err != nil {
		return fmt.Errorf("%w: resolve recipient %w", subm.ErrEmailDelivery, err)
	}
	return inv.global.notifier.Send(ctx, to, subject, body)
}
