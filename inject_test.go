package qecc

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInject(t *testing.T) {
	Convey("Given an encoded Shor block", t, func() {
		block, err := NewShorCode().Encode(One)
		So(err, ShouldBeNil)

		Convey("Flipping position 0 should set the first bit", func() {
			out, err := Inject(block, []int{0})
			So(err, ShouldBeNil)
			So(out.Ints(), ShouldResemble, []int{1, 0, 0, 0, 1, 0, 0, 0})
			So(block.Ints(), ShouldResemble, []int{0, 0, 0, 0, 1, 0, 0, 0})
		})

		Convey("No positions should leave the block as it was", func() {
			out, err := Inject(block, nil)
			So(err, ShouldBeNil)
			So(out.Equal(block), ShouldBeTrue)
		})

		Convey("A position listed twice should cancel out", func() {
			for p := 0; p < block.Len(); p++ {
				twice, err := Inject(block, []int{p, p})
				So(err, ShouldBeNil)
				none, _ := Inject(block, []int{})
				So(twice.Equal(none), ShouldBeTrue)
			}
		})

		Convey("A position listed three times should flip once", func() {
			out, err := Inject(block, []int{2, 2, 2})
			So(err, ShouldBeNil)
			So(out.Ints(), ShouldResemble, []int{0, 0, 1, 0, 1, 0, 0, 0})
		})

		Convey("Out-of-range positions should be rejected", func() {
			_, err := Inject(block, []int{block.Len()})
			So(errors.Is(err, ErrPositionOutOfRange), ShouldBeTrue)

			_, err = Inject(block, []int{1, -1})
			So(errors.Is(err, ErrPositionOutOfRange), ShouldBeTrue)
		})
	})
}

func TestNetPositions(t *testing.T) {
	Convey("Given repeated positions", t, func() {
		So(NetPositions([]int{3, 1, 3, 0, 1, 1}), ShouldResemble, []int{0, 1})
		So(NetPositions(nil), ShouldBeEmpty)
	})
}
