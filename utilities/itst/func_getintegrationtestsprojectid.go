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

package itst

import (
	"os"
	"strings"
)

// IntegrationTestsProjectIDEnvVar names the project used by integration tests
const IntegrationTestsProjectIDEnvVar = "SUBMISSIONS_INTEG_PROJECT_ID"

const defaultIntegrationTestsProjectID = "submissions-integ"

// GetIntegrationTestsProjectID returns the project ID to run integration tests against an emulator
// ok is false when the emulator host variable is not set, so that integration tests never touch a real project
// A project ID set in the environment MUST contain 'integ'
func GetIntegrationTestsProjectID(emulatorHostEnvVar string) (projectID string, ok bool) {
	if os.Getenv(emulatorHostEnvVar) == "" {
		return "", false
	}
	projectID = os.Getenv(IntegrationTestsProjectIDEnvVar)
	if projectID == "" {
		return defaultIntegrationTestsProjectID, true
	}
	if !strings.Contains(projectID, "integ") {
		return "", false
	}
	return projectID, true
}
