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

package aut

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
)

// GetClientOption build a clientOption impersonating a Google Workspace user from a service account JSON key file
func GetClientOption(ctx context.Context,
	keyJSONFilePath string,
	userToImpersonate string,
	scopes []string) (clientOption option.ClientOption, err error) {
	keyJSONdata, err := os.ReadFile(keyJSONFilePath)
	if err != nil {
		return clientOption, fmt.Errorf("os.ReadFile %s %v", keyJSONFilePath, err)
	}
	jwtConfig, err := getJWTConfigAndImpersonate(keyJSONdata, userToImpersonate, scopes)
	if err != nil {
		return clientOption, err
	}
	// Use client option as admin.New(httpClient) is deprecated https://godoc.org/google.golang.org/api/admin/directory/v1#New
	return option.WithHTTPClient(jwtConfig.Client(ctx)), nil
}
