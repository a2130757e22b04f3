// Copyright 2023 The pngme Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package chunkdata

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	. "go.chromium.org/luci/common/testing/assertions"
)

func TestTypeTag(t *testing.T) {
	t.Parallel()

	Convey("TypeTag", t, func() {
		Convey("from bytes", func() {
			Convey("good", func() {
				tag, err := TagFromBytes([4]byte{82, 117, 83, 116})
				So(err, ShouldBeNil)
				So(tag.Bytes(), ShouldResemble, [4]byte{'R', 'u', 'S', 't'})
				So(tag.String(), ShouldEqual, "RuSt")
			})

			Convey("bad", func() {
				Convey("digit", func() {
					_, err := TagFromBytes([4]byte{'R', 'u', '1', 't'})
					So(err, ShouldErrLike, "ASCII letters")
					So(err, ShouldHaveSameTypeAs, &ErrNonAlphabetic{})
				})

				Convey("symbol", func() {
					_, err := TagFromBytes([4]byte{'R', 'u', '_', 't'})
					So(err, ShouldErrLike, `bad type tag "Ru_t"`)
				})

				Convey("high byte", func() {
					_, err := TagFromBytes([4]byte{'R', 'u', 0x80, 't'})
					So(err, ShouldErrLike, "ASCII letters")
				})

				Convey("boundary bytes", func() {
					// the neighbors of A-Z and a-z in the byte space.
					for _, b := range []byte{'A' - 1, 'Z' + 1, 'a' - 1, 'z' + 1} {
						_, err := TagFromBytes([4]byte{b, b, b, b})
						So(err, ShouldErrLike, "ASCII letters")
					}
				})
			})
		})

		Convey("parse", func() {
			Convey("good", func() {
				tag, err := ParseTag("RuSt")
				So(err, ShouldBeNil)
				So(tag.Bytes(), ShouldResemble, [4]byte{82, 117, 83, 116})
			})

			Convey("non-alphabetic", func() {
				_, err := ParseTag("Ru1t")
				So(err, ShouldErrLike, "ASCII letters")
			})

			Convey("wrong length", func() {
				_, err := ParseTag("RuStt")
				So(err, ShouldErrLike, "exactly 4 characters, found: 5")
				So(err, ShouldHaveSameTypeAs, &ErrBadTagLength{})

				_, err = ParseTag("")
				So(err, ShouldErrLike, "exactly 4 characters, found: 0")
			})

			Convey("non-alphabetic wins over wrong length", func() {
				// "Ru1" is both too short and contains a digit; the
				// alphabetic failure is the one reported.
				_, err := ParseTag("Ru1")
				So(err, ShouldErrLike, "ASCII letters")
				So(err, ShouldHaveSameTypeAs, &ErrNonAlphabetic{})
			})
		})

		Convey("properties", func() {
			props := func(s string) []bool {
				tag, err := ParseTag(s)
				So(err, ShouldBeNil)
				return []bool{
					tag.IsCritical(), tag.IsPublic(),
					tag.IsReservedBitValid(), tag.IsSafeToCopy(),
					tag.IsValid(),
				}
			}

			Convey("RuSt", func() {
				So(props("RuSt"), ShouldResemble, []bool{true, false, true, true, true})
			})

			Convey("ruSt", func() {
				So(props("ruSt"), ShouldResemble, []bool{false, false, true, true, true})
			})

			Convey("RUSt", func() {
				So(props("RUSt"), ShouldResemble, []bool{true, true, true, true, true})
			})

			Convey("Rust", func() {
				So(props("Rust"), ShouldResemble, []bool{true, false, false, true, false})
			})

			Convey("RuST", func() {
				So(props("RuST"), ShouldResemble, []bool{true, false, true, false, true})
			})
		})

		Convey("equality", func() {
			a, err := ParseTag("RuSt")
			So(err, ShouldBeNil)
			b, err := TagFromBytes([4]byte{82, 117, 83, 116})
			So(err, ShouldBeNil)
			c, err := ParseTag("Rust")
			So(err, ShouldBeNil)

			So(a == b, ShouldBeTrue)
			So(a == c, ShouldBeFalse)
		})
	})
}
