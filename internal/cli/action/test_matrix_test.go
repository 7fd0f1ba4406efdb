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
	"github.com/suse/bci-dockerfile-generator/internal/cli/app"
	"github.com/suse/bci-dockerfile-generator/internal/cli/cmd"
	"github.com/suse/bci-dockerfile-generator/internal/staging"
	"github.com/suse/bci-dockerfile-generator/pkg/log"
	"github.com/suse/bci-dockerfile-generator/pkg/sys"
	sysmock "github.com/suse/bci-dockerfile-generator/pkg/sys/mock"
	"github.com/suse/bci-dockerfile-generator/pkg/sys/vfs"
)

var _ = Describe("Test matrix action", Label("test-matrix"), func() {
	var s *sys.System
	var tfs vfs.FS
	var cleanup func()
	var err error
	var ctx *cli.Context
	var buffer *bytes.Buffer

	BeforeEach(func() {
		cmd.TestMatrixArgs = cmd.TestMatrixFlags{CatalogDir: "/catalog", Destination: "/matrix/app.yaml", Family: "app"}
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
		Expect(action.TestMatrix(ctx)).NotTo(Succeed())
	})
	It("writes the application stack matrix", func() {
		Expect(action.TestMatrix(ctx)).To(Succeed())

		data, err := tfs.ReadFile("/matrix/app.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(HavePrefix("defaults:\n"))
		Expect(string(data)).To(ContainSubstring("  SLE15-SP6-node-app:\n"))
		Expect(string(data)).To(ContainSubstring("    groupid: 445\n"))
		Expect(string(data)).NotTo(ContainSubstring("python"))
		Expect(buffer.String()).To(ContainSubstring("Wrote 1 projects of family app to /matrix/app.yaml"))
	})
	It("writes the language matrix", func() {
		cmd.TestMatrixArgs.Family = "lang"
		Expect(action.TestMatrix(ctx)).To(Succeed())

		data, err := tfs.ReadFile("/matrix/app.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("  SLE15-SP5-python-3.11:\n"))
		Expect(string(data)).To(ContainSubstring("BCI_TEST_ENVS: 'all,metadata,python'"))
		Expect(string(data)).NotTo(ContainSubstring("node-app"))
	})
	It("writes the OS matrix of a service pack", func() {
		cmd.TestMatrixArgs.Family = "5"
		Expect(action.TestMatrix(ctx)).To(Succeed())

		data, err := tfs.ReadFile("/matrix/app.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("  SLE15-SP5-base:\n"))
		Expect(string(data)).To(ContainSubstring("    groupid: 475\n"))
	})
	It("validates the family before loading the catalog", func() {
		cmd.TestMatrixArgs.Family = "tumbleweed"
		cmd.TestMatrixArgs.CatalogDir = "/doesntexist"
		err = action.TestMatrix(ctx)
		Expect(err).To(MatchError(staging.ErrInvalidSelector))
		Expect(buffer.String()).NotTo(ContainSubstring("failed loading"))
	})
	It("fails if the catalog can't be loaded", func() {
		cmd.TestMatrixArgs.CatalogDir = "/doesntexist"
		Expect(action.TestMatrix(ctx)).NotTo(Succeed())
	})
	It("fails if the destination can't be written", func() {
		rofs, err := sysmock.ReadOnlyTestFS(tfs)
		Expect(err).NotTo(HaveOccurred())
		s, err = sys.NewSystem(sys.WithFS(rofs), sys.WithLogger(log.New(log.WithDiscardAll())))
		Expect(err).NotTo(HaveOccurred())
		ctx.App.Metadata["system"] = s

		err = action.TestMatrix(ctx)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Test matrix command", Label("test-matrix"), func() {
	It("rejects an unknown family while parsing flags", func() {
		application := app.New(cmd.Usage, cmd.GlobalFlags(), cmd.Setup, nil,
			cmd.NewTestMatrixCommand("bci-generator", func(*cli.Context) error {
				Fail("action must not run")
				return nil
			}))
		application.Writer = &bytes.Buffer{}
		application.ErrWriter = &bytes.Buffer{}

		err := application.Run([]string{"bci-generator", "test-matrix", "-f", "7", "-d", "/tmp/matrix.yaml"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("invalid container family"))
	})
	It("requires a destination", func() {
		application := app.New(cmd.Usage, cmd.GlobalFlags(), cmd.Setup, nil,
			cmd.NewTestMatrixCommand("bci-generator", action.TestMatrix))
		application.Writer = &bytes.Buffer{}
		application.ErrWriter = &bytes.Buffer{}

		err := application.Run([]string{"bci-generator", "test-matrix", "-f", "app"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("destination"))
	})
})
