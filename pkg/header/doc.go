// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package header provides the envelope written in front of majoplot documents.
//
// Every document the CLI emits starts with a Header naming what follows
// (Kind), the document schema (APIVersion), and free-form metadata such as
// the generation timestamp and the tool version:
//
//	kind: PreprocessResult
//	apiVersion: majoplot.io/v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v0.3.0
//
// Consumers should check Kind and APIVersion before decoding the body:
//
//	if !h.Kind.IsValid() || h.APIVersion != header.APIVersion {
//	    return fmt.Errorf("unsupported document %s/%s", h.APIVersion, h.Kind)
//	}
//
// Timestamps use RFC3339 in UTC.
package header
