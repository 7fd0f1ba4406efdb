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

package version_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/suse/bci-dockerfile-generator/internal/cli/app"
	"github.com/suse/bci-dockerfile-generator/internal/cli/version"
)

func TestVersionSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Version test suite")
}

var _ = Describe("Version command", Label("version"), func() {
	It("prints the program version", func() {
		out := &bytes.Buffer{}
		application := app.New("usage", nil, nil, nil, version.NewVersionCommand("bci-generator"))
		application.Writer = out

		Expect(application.Run([]string{"bci-generator", "version"})).To(Succeed())
		Expect(out.String()).To(Equal(version.Get() + "\n"))
		Expect(version.Get()).To(HavePrefix("v"))
		Expect(version.Get()).To(ContainSubstring("+g"))
	})
})
