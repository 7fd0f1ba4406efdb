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

package staging

import (
	"errors"
	"fmt"

	"github.com/suse/bci-dockerfile-generator/internal/image"
)

const (
	languageGroupID    = 444
	applicationGroupID = 445
)

var ErrUnknownGroupID = errors.New("no openQA group id for OS version")

// osGroupIDs maps every supported OS version to the openQA job group of its
// base OS images
var osGroupIDs = map[image.OsVersion]int{
	image.SP3: 442,
	image.SP4: 443,
	image.SP5: 475,
	image.SP6: 538,
}

// GroupID returns the openQA job group the image's tests are scheduled in
func GroupID(d *image.Descriptor) (int, error) {
	if d.Kind.IsApplicationStack() {
		return applicationGroupID, nil
	}
	if d.Kind.IsDevelopment() {
		return languageGroupID, nil
	}

	id, ok := osGroupIDs[d.OsVersion]
	if !ok {
		return 0, fmt.Errorf("%w %s (image %s)", ErrUnknownGroupID, d.OsVersion.PrettyPrint(), d.UID())
	}
	return id, nil
}
