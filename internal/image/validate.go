/*
Copyright © 2026 SUSE LLC
SPDX-License-Identifier: Apache-2.0

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package image

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/distribution/reference"
)

var ErrInvalidDescriptor = errors.New("invalid image descriptor")

// obsPlaceholder matches the %NAME% tokens OBS substitutes at build time
var obsPlaceholder = regexp.MustCompile(`%{1,2}[A-Za-z0-9_]+%{1,2}`)

// Validate checks the fields rendering and metadata derivation depend on
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDescriptor)
	}
	if d.PackageName == "" {
		return fmt.Errorf("%w: image %q has no package name", ErrInvalidDescriptor, d.Name)
	}
	if d.OsVersion == 0 {
		return fmt.Errorf("%w: image %q has no OS version", ErrInvalidDescriptor, d.Name)
	}
	if len(d.BuildTags) == 0 {
		return fmt.Errorf("%w: image %q has no build tags", ErrInvalidDescriptor, d.Name)
	}

	for _, tag := range d.BuildTags {
		if err := validateBuildTag(tag); err != nil {
			return fmt.Errorf("%w: image %q: %w", ErrInvalidDescriptor, d.Name, err)
		}
	}

	seen := map[Arch]bool{}
	for _, arch := range d.ExclusiveArch {
		if !arch.IsValid() {
			return fmt.Errorf("%w: image %q: unknown architecture %q", ErrInvalidDescriptor, d.Name, arch)
		}
		if seen[arch] {
			return fmt.Errorf("%w: image %q: architecture %q listed twice", ErrInvalidDescriptor, d.Name, arch)
		}
		seen[arch] = true
	}

	for i, r := range d.Replacements {
		if r.Regex == "" || r.PackageName == "" {
			return fmt.Errorf("%w: image %q: replacement %d needs a regex and a package name", ErrInvalidDescriptor, d.Name, i)
		}
		if !r.ParseVersion.IsValid() {
			return fmt.Errorf("%w: image %q: unknown parse version %q", ErrInvalidDescriptor, d.Name, r.ParseVersion)
		}
	}

	return nil
}

func validateBuildTag(tag string) error {
	ref, err := reference.ParseNormalizedNamed(obsPlaceholder.ReplaceAllString(tag, "0"))
	if err != nil {
		return fmt.Errorf("parsing build tag %q: %w", tag, err)
	}
	if _, ok := ref.(reference.Tagged); !ok {
		return fmt.Errorf("build tag %q has no tag", tag)
	}
	return nil
}
