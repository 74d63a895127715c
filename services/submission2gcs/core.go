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
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gradeops/submissions/utilities/erm"
	"github.com/gradeops/submissions/utilities/ffo"
	"github.com/gradeops/submissions/utilities/gcf"
	"github.com/gradeops/submissions/utilities/gps"
	"github.com/gradeops/submissions/utilities/logging"
	"github.com/gradeops/submissions/utilities/solution"
	"github.com/gradeops/submissions/utilities/subm"
)

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
// A failed initialization is remembered so that invocations stop without retry
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	initID := fmt.Sprintf("%v", uuid.New())
	defer func() {
		global.initFailed = err != nil
	}()

	instanceDeployment := NewInstanceDeployment()
	err = ffo.ReadUnmarshalYAML(solution.PathToFunctionCode+solution.SettingsFileName, instanceDeployment)
	if err != nil {
		log.Println(logging.Entry{
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("ReadUnmarshalYAML %s %v", solution.SettingsFileName, err),
			InitID:      initID,
		})
		return err
	}
	return global.initialize(ctx, instanceDeployment, initID)
}

func (global *Global) initialize(ctx context.Context, instanceDeployment *InstanceDeployment, initID string) (err error) {
	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           initID,
	})

	err = instanceDeployment.Situate(nil)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("instanceDeployment.Situate %v", err),
			InitID:           initID,
		})
		return err
	}

	service := instanceDeployment.Settings.Service
	global.notifyOnFailure = service.NotifyOnFailure
	global.recordFailures = service.RecordFailures
	global.retryOnTransient = service.GCF.RetryOnTransient
	global.retryTimeOutSeconds = service.GCF.RetryTimeOutSeconds
	global.sourceURLField = service.SourceURLField
	global.now = time.Now

	err = global.initClients(ctx, instanceDeployment)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("initClients %v", err),
			InitID:           initID,
		})
		return err
	}
	return nil
}

// EntryPoint is the function to be executed for each cloud function occurence
// return err to RETRY, return nil for NO RETRY
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	ok, eventMetadata, err := gcf.IntialRetryCheck(ctxEvent, global.retryTimeOutSeconds)
	if err != nil {
		// Assume an error on the function invoker and try again.
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "redo_on_transient",
			Description:      fmt.Sprintf("pubsub_id no available %v", err),
		})
		return err
	}
	if global.initFailed {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        "init function failed",
			TriggeringPubsubID: eventMetadata.EventID,
		})
		return nil
	}
	now := time.Now()
	d := now.Sub(eventMetadata.Timestamp)
	if !ok {
		log.Println(logging.Entry{
			MicroserviceName:           global.microserviceName,
			InstanceName:               global.instanceName,
			Environment:                global.environment,
			Severity:                   "CRITICAL",
			Message:                    "noretry",
			Description:                "Pubsub message too old",
			TriggeringPubsubID:         eventMetadata.EventID,
			TriggeringPubsubAgeSeconds: d.Seconds(),
			TriggeringPubsubTimestamp:  &eventMetadata.Timestamp,
			Now:                        &now,
		})
		return nil
	}
	log.Println(logging.Entry{
		MicroserviceName:           global.microserviceName,
		InstanceName:               global.instanceName,
		Environment:                global.environment,
		Severity:                   "NOTICE",
		Message:                    "start",
		TriggeringPubsubID:         eventMetadata.EventID,
		TriggeringPubsubAgeSeconds: d.Seconds(),
		TriggeringPubsubTimestamp:  &eventMetadata.Timestamp,
		Now:                        &now,
	})

	result, err := global.process(ctxEvent, PubSubMessage.Data, eventMetadata.EventID)
	if global.retryOnTransient && isTransient(err) {
		log.Println(logging.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        result.Body,
			StatusCode:         result.StatusCode,
			TriggeringPubsubID: eventMetadata.EventID,
		})
		return err
	}

	severity := "NOTICE"
	if result.StatusCode != http.StatusOK {
		severity = "ERROR"
	}
	now = time.Now()
	latency := now.Sub(eventMetadata.Timestamp)
	log.Println(logging.Entry{
		MicroserviceName:          global.microserviceName,
		InstanceName:              global.instanceName,
		Environment:               global.environment,
		Severity:                  severity,
		Message:                   "finish",
		Description:               result.Body,
		StatusCode:                result.StatusCode,
		Now:                       &now,
		TriggeringPubsubID:        eventMetadata.EventID,
		TriggeringPubsubTimestamp: &eventMetadata.Timestamp,
		LatencySeconds:            latency.Seconds(),
	})
	return nil
}

// isTransient malformed payloads and fetch failures are never retried
func isTransient(err error) bool {
	if err == nil || errors.Is(err, subm.ErrMalformedPayload) || errors.Is(err, subm.ErrFetchFailed) {
		return false
	}
	return erm.IsTransient(err)
}
