package qecc

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func TestReport(t *testing.T) {
	Convey("Given a repaired Shor run", t, func() {
		result, err := Run(ShorName, One, []int{0})
		So(err, ShouldBeNil)

		Convey("The text report should walk every stage", func() {
			report := result.Report()
			So(report, ShouldContainSubstring, "code:      shor")
			So(report, ShouldContainSubstring, "erroneous: [1 0 0 0 1 0 0 0]")
			So(report, ShouldContainSubstring, "syndrome:  [1 0 0]")
			So(report, ShouldContainSubstring, "error correction successful")
		})

		Convey("The chart should label each bar and the syndrome", func() {
			chart := RenderChart(result)
			So(chart, ShouldContainSubstring, "Original")
			So(chart, ShouldContainSubstring, "Erroneous")
			So(chart, ShouldContainSubstring, "Corrected")
			So(chart, ShouldContainSubstring, "Syndrome: [1 0 0]")
		})

		Convey("The summary should survive JSON", func() {
			var buf bytes.Buffer
			So(EncodeSummary(&buf, result.Summary(), "json"), ShouldBeNil)

			var decoded Summary
			So(json.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded, ShouldResemble, result.Summary())
		})

		Convey("The summary should survive YAML", func() {
			var buf bytes.Buffer
			So(EncodeSummary(&buf, result.Summary(), "yaml"), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "outcome: corrected")

			var decoded Summary
			So(yaml.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded.Syndrome, ShouldResemble, []int{1, 0, 0})
			So(decoded.Success, ShouldBeTrue)
		})

		Convey("Unknown formats should be rejected", func() {
			var buf bytes.Buffer
			err := EncodeSummary(&buf, result.Summary(), "xml")
			So(errors.Is(err, ErrInvalidInput), ShouldBeTrue)
		})
	})

	Convey("Given runs that did not repair the block", t, func() {
		detected, _ := Run(ShorName, Zero, []int{0, 1})
		So(detected.Report(), ShouldContainSubstring, "error detected, not repaired")
		So(detected.Summary().Outcome, ShouldEqual, "detected")

		undetected, _ := Run(ShorName, Zero, []int{7})
		So(undetected.Report(), ShouldContainSubstring, "error correction failed")
		So(undetected.Summary().Outcome, ShouldEqual, "undetected")
	})
}
