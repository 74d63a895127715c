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

package solution

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: projectID, releases buckets names, statuses table name
// A name already set is kept when the environment has no entry
func (settings *Settings) Situate(environmentName string) {
	situate(&settings.Hosting.ProjectID, settings.Hosting.ProjectIDs, environmentName)
	situate(&settings.Hosting.GCS.Buckets.Releases.Name, settings.Hosting.GCS.Buckets.Releases.Names, environmentName)
	situate(&settings.Hosting.S3.Buckets.Releases.Name, settings.Hosting.S3.Buckets.Releases.Names, environmentName)
	situate(&settings.Hosting.DynamoDB.Tables.Statuses.Name, settings.Hosting.DynamoDB.Tables.Statuses.Names, environmentName)
}

func situate(value *string, values map[string]string, environmentName string) {
	if situated, ok := values[environmentName]; ok {
		*value = situated
	}
}
