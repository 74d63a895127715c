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
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// getJWTConfigAndImpersonate build JWT with impersonification
func getJWTConfigAndImpersonate(keyJSONdata []byte, userToImpersonate string, scopes []string) (jwtConfig *jwt.Config, err error) {
	// using Json Web joken as the method with credentials does not implement the subject impersonification
	// https://github.com/googleapis/google-api-java-client/issues/1007
	jwtConfig, err = google.JWTConfigFromJSON(keyJSONdata, scopes...)
	if err != nil {
		return jwtConfig, fmt.Errorf("google.JWTConfigFromJSON: %v", err)
	}
	jwtConfig.Subject = userToImpersonate
	return jwtConfig, nil
}
