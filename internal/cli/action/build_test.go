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

package action_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/urfave/cli/v2"

	"github.com/suse/bci-dockerfile-generator/internal/cli/action"
	"github.com/suse/bci-dockerfile-generator/internal/cli/cmd"
	"github.com/suse/bci-dockerfile-generator/pkg/log"
	"github.com/suse/bci-dockerfile-generator/pkg/sys"
	sysmock "github.com/suse/bci-dockerfile-generator/pkg/sys/mock"
	"github.com/suse/bci-dockerfile-generator/pkg/sys/vfs"
)

var _ = Describe("Build action", Label("build"), func() {
	var s *sys.System
	var tfs vfs.FS
	var cleanup func()
	var err error
	var ctx *cli.Context
	var buffer *bytes.Buffer

	BeforeEach(func() {
		cmd.BuildArgs = cmd.BuildFlags{CatalogDir: "/catalog", OutputDir: "/out"}
		buffer = &bytes.Buffer{}
		tfs, cleanup, err = sysmock.TestFS(map[string]any{
			"/catalog/images.yaml": catalogImages,
		})
		Expect(err).NotTo(HaveOccurred())
		s, err = sys.NewSystem(
			sys.WithFS(tfs),
			sys.WithLogger(log.New(log.WithBuffer(buffer))),
		)
		Expect(err).NotTo(HaveOccurred())
		ctx = cli.NewContext(cli.NewApp(), nil, &cli.Context{})
		if ctx.App.Metadata == nil {
			ctx.App.Metadata = map[string]any{}
		}
		ctx.App.Metadata["system"] = s
	})

	AfterEach(func() {
		cleanup()
	})

	It("fails if no sys.System instance is in metadata", func() {
		ctx.App.Metadata["system"] = nil
		Expect(action.Build(ctx)).NotTo(Succeed())
	})
	It("renders every catalog image", func() {
		Expect(action.Build(ctx)).To(Succeed())

		dockerfile, err := tfs.ReadFile("/out/python-3.11-image/Dockerfile")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(dockerfile)).To(ContainSubstring("#!BuildTag: bci/python:3.11\n"))

		service, err := tfs.ReadFile("/out/python-3.11-image/_service")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(service)).To(ContainSubstring("replace_using_package_version"))

		Expect(vfs.Exists(tfs, "/out/base-image/base-image.kiwi")).To(BeTrue())
		Expect(vfs.Exists(tfs, "/out/node-app-image/Dockerfile")).To(BeTrue())
		Expect(buffer.String()).To(ContainSubstring("Rendered 4 images into /out"))
	})
	It("renders only the selected images", func() {
		cmd.BuildArgs.Images = *cli.NewStringSlice("base")
		cmd.BuildArgs.OsVersion = "tumbleweed"
		Expect(action.Build(ctx)).To(Succeed())

		Expect(vfs.Exists(tfs, "/out/base-image/base-image.kiwi")).To(BeTrue())
		Expect(vfs.Exists(tfs, "/out/base-image/Dockerfile")).To(BeFalse())
		Expect(vfs.Exists(tfs, "/out/python-3.11-image")).To(BeFalse())
	})
	It("fails on an unknown image", func() {
		cmd.BuildArgs.Images = *cli.NewStringSlice("ruby")
		err = action.Build(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("image ruby not found in catalog"))
	})
	It("fails when the selection is empty", func() {
		cmd.BuildArgs.Images = *cli.NewStringSlice("node-app")
		cmd.BuildArgs.OsVersion = "5"
		err = action.Build(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("no image matches the selection"))
	})
	It("fails on an invalid OS version", func() {
		cmd.BuildArgs.OsVersion = "sp9"
		Expect(action.Build(ctx)).NotTo(Succeed())
	})
	It("fails if the catalog can't be loaded", func() {
		cmd.BuildArgs.CatalogDir = "/doesntexist"
		err = action.Build(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("listing catalog directory /doesntexist"))
	})
})
