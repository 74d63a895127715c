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

import "context"

// Directory backends
const (
	BackendStatic    = "static"
	BackendFirestore = "firestore"
	BackendAdmin     = "admin"
)

// Lookup finds the email address of a user id
type Lookup interface {
	LookupEmail(ctx context.Context, userID string) (string, error)
}

// Resolver resolves recipients, lookup may be nil for the static backend
type Resolver struct {
	defaultRecipient string
	lookup           Lookup
}

// NewResolver returns a resolver
func NewResolver(lookup Lookup, defaultRecipient string) *Resolver {
	return &Resolver{
		defaultRecipient: defaultRecipient,
		lookup:           lookup,
	}
}
