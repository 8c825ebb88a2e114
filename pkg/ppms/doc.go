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

// Package ppms loads Quantum Design PPMS resistivity data files (.dat).
//
// A file has a [Header] section of comma-separated directives and a [Data]
// section whose first row holds the column titles:
//
//	[Header]
//	; comment
//	BYAPP,Resistivity,1.2.0
//	INFO,film A,SAMPLE1_NAME
//	INFO,Ohm-cm,SAMPLE1_UNITS
//	FILEOPENTIME,3815123456.00,10/15/2024,9:15 AM
//	[Data]
//	Comment,Time Stamp (sec),Temperature (K),Magnetic Field (Oe),...
//	,3815123460.1,300.0,100.0,...
//
// Empty cells load as null. The free-text Comment column is always null.
// Any other cell that is not a number is an error.
package ppms
