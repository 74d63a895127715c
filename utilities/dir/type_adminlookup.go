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

	"github.com/gradeops/submissions/utilities/aut"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/option"
)

// AdminLookup queries the Google Workspace directory
type AdminLookup struct {
	dirAdminService *admin.Service
}

// NewAdminLookup builds the directory service impersonating a Workspace admin
func NewAdminLookup(ctx context.Context, keyJSONFilePath string, adminToImpersonate string) (*AdminLookup, error) {
	clientOption, err := aut.GetClientOption(ctx,
		keyJSONFilePath,
		adminToImpersonate,
		[]string{admin.AdminDirectoryUserReadonlyScope})
	if err != nil {
		return nil, fmt.Errorf("aut.GetClientOption %v", err)
	}
	return NewAdminLookupWithOptions(ctx, clientOption)
}

// NewAdminLookupWithOptions builds the directory service from client options
func NewAdminLookupWithOptions(ctx context.Context, opts ...option.ClientOption) (*AdminLookup, error) {
	dirAdminService, err := admin.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("admin.NewService %v", err)
	}
	return &AdminLookup{dirAdminService: dirAdminService}, nil
}

// LookupEmail implements Lookup, the user key is a user id, a primary email or an alias
func (lookup *AdminLookup) LookupEmail(ctx context.Context, userID string) (string, error) {
	user, err := lookup.dirAdminService.Users.Get(userID).Fields("primaryEmail").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("dirAdminService.Users.Get %s %v", userID, err)
	}
	return user.PrimaryEmail, nil
}
