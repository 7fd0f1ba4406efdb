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

import "fmt"

const (
	suseVendor       = "SUSE LLC"
	suseURL          = "https://www.suse.com/products/base-container-images/"
	suseRegistry     = "registry.suse.com"
	suseMaintainer   = "SUSE LLC (https://www.suse.com/)"
	suseEULA         = "sle-bci"
	suseLifecycleURL = "https://www.suse.com/lifecycle#suse-linux-enterprise-server-15"

	opensuseVendor       = "openSUSE Project"
	opensuseURL          = "https://www.opensuse.org"
	opensuseRegistry     = "registry.opensuse.org/opensuse"
	opensuseMaintainer   = "openSUSE (https://www.opensuse.org/)"
	opensuseLifecycleURL = "https://en.opensuse.org/Lifetime"

	defaultLicense      = "MIT"
	defaultSupportLevel = "techpreview"
	defaultReleaseStage = "released"
)

// Resolve fills every unset field that has a well known value for the
// image's OS version and kind. It is idempotent.
func (d *Descriptor) Resolve() {
	rolling := d.IsRollingRelease()

	setDefault(&d.License, defaultLicense)
	setDefault(&d.ReleaseStage, defaultReleaseStage)
	setDefault(&d.TestMarker, d.Name)
	setDefault(&d.Title, d.Name)

	prefixKind := "bci"
	if d.Kind.IsApplicationStack() {
		prefixKind = "application"
	}

	if rolling {
		setDefault(&d.Vendor, opensuseVendor)
		setDefault(&d.URL, opensuseURL)
		setDefault(&d.Maintainer, opensuseMaintainer)
		setDefault(&d.LifecycleURL, opensuseLifecycleURL)
		setDefault(&d.LabelPrefix, fmt.Sprintf("org.opensuse.%s.%s", prefixKind, d.Name))
		setDefault(&d.Description, fmt.Sprintf("%s based on the openSUSE Tumbleweed Base Container Image.", d.Title))
		setDefault(&d.KiwiVersion, "%OS_VERSION_ID%")
		if len(d.BuildTags) > 0 {
			setDefault(&d.Reference, fmt.Sprintf("%s/%s", opensuseRegistry, d.BuildTags[0]))
		}
	} else {
		setDefault(&d.Vendor, suseVendor)
		setDefault(&d.URL, suseURL)
		setDefault(&d.Maintainer, suseMaintainer)
		setDefault(&d.LifecycleURL, suseLifecycleURL)
		setDefault(&d.EULA, suseEULA)
		setDefault(&d.SupportLevel, defaultSupportLevel)
		setDefault(&d.LabelPrefix, fmt.Sprintf("com.suse.%s.%s", prefixKind, d.Name))
		setDefault(&d.Description, fmt.Sprintf("%s based on the SLE Base Container Image.", d.Title))
		setDefault(&d.KiwiVersion, d.OsVersion.ContainerOSVersion()+".0")
		if len(d.BuildTags) > 0 {
			setDefault(&d.Reference, fmt.Sprintf("%s/%s", suseRegistry, d.BuildTags[0]))
		}
	}

	if d.VersionLabel == "" {
		if d.BuildVersion != "" {
			d.VersionLabel = d.BuildVersion
		} else if _, tag, err := d.NameAndTag(); err == nil {
			d.VersionLabel = tag
		}
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
