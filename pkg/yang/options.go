// Copyright 2017 Google Inc.
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

package yang

// Options defines the options that should be used when parsing YANG modules,
// including specific overrides for potentially problematic YANG constructs.
// An Options value is passed explicitly to ParseModule/ParseSubmodule, so
// concurrent calls with different settings never interfere with each other.
type Options struct {
	// LenientSectionOrder allows a module's header, linkage, meta, and
	// revision statements to appear out of RFC 7950 %7.1 order without
	// failing ParseModule.  Violations are still reported through
	// Module.Diagnostics.  When false (the default), an out-of-order
	// section statement is a fatal InvalidArgument error.
	LenientSectionOrder bool
}
