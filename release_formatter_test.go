package launchtoml_test

import (
	"testing"

	"github.com/paketo-buildpacks/launchtoml"
	"github.com/sclevine/spec"
	"gopkg.in/yaml.v2"

	. "github.com/onsi/gomega"
)

func testReleaseFormatter(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		formatter launchtoml.ReleaseFormatter
	)

	it.Before(func() {
		formatter = launchtoml.NewReleaseFormatter()
	})

	it("formats processes as a default_process_types document", func() {
		document := formatter.Format(launchtoml.ProcessList{
			{Type: "web", Command: "gunicorn app:app"},
		})
		Expect(document).To(Equal("---\ndefault_process_types:\n  web: gunicorn app:app\n"))
	})

	it("lists processes one per line in list order", func() {
		document := formatter.Format(launchtoml.ProcessList{
			{Type: "web", Command: "gunicorn app:app"},
			{Type: "worker", Command: "python worker.py"},
		})
		Expect(document).To(Equal(`---
default_process_types:
  web: gunicorn app:app
  worker: python worker.py
`))
	})

	it("produces a document YAML consumers can decode", func() {
		document := formatter.Format(launchtoml.ProcessList{
			{Type: "web", Command: "echo hi && exit 0"},
			{Type: "worker", Command: "python worker.py"},
		})

		var release struct {
			DefaultProcessTypes map[string]string `yaml:"default_process_types"`
		}
		Expect(yaml.Unmarshal([]byte(document), &release)).To(Succeed())
		Expect(release.DefaultProcessTypes).To(Equal(map[string]string{
			"web":    "echo hi && exit 0",
			"worker": "python worker.py",
		}))
	})

	context("when the process list is empty", func() {
		it("formats to an empty string with no header", func() {
			Expect(formatter.Format(nil)).To(BeEmpty())
		})
	})
}
