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

package render

import (
	"fmt"

	"github.com/suse/bci-dockerfile-generator/internal/image"
)

// Service renders the OBS _service file of the image
func (r *Renderer) Service(d *image.Descriptor) string {
	doc := &document{}
	doc.add(
		"<services>",
		fmt.Sprintf(`  <service mode="buildtime" name="%s_label_helper"/>`, d.BuildRecipeType),
		`  <service mode="buildtime" name="kiwi_metainfo_helper"/>`,
	)

	for _, rp := range d.Replacements {
		file := rp.FileName
		if file == "" {
			file = d.RecipeFileName()
		}
		doc.add(
			`  <service name="replace_using_package_version" mode="buildtime">`,
			fmt.Sprintf(`    <param name="file">%s</param>`, xmlEscape(file)),
			fmt.Sprintf(`    <param name="regex">%s</param>`, xmlEscape(rp.Regex)),
			fmt.Sprintf(`    <param name="package">%s</param>`, xmlEscape(rp.PackageName)),
		)
		doc.addIf(rp.ParseVersion != "", fmt.Sprintf(`    <param name="parse-version">%s</param>`, rp.ParseVersion))
		doc.add("  </service>")
	}
	doc.add("</services>")

	return doc.String()
}
